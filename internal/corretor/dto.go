package corretor

// request DTOs

type LoginRequest struct {
	CPF   string `json:"cpf"`
	Senha string `json:"senha"`
}

type criarCorretorRequest struct {
	Nome             string `json:"nome"`
	Email            string `json:"email"`
	Telefone         string `json:"telefone"`
	CPF              string `json:"cpf"`
	Senha            string `json:"senha"`
	DataCadastro     string `json:"data_cadastro"`
	DataDesligamento string `json:"data_desligamento"`
	TipoUsuario      string `json:"tipo_usuario"`
}

// response DTOs

type ResumoCorretorDTO struct {
	ID          uint   `json:"id"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	TipoUsuario string `json:"tipo_usuario"`
}

type LoginResponse struct {
	Success  bool              `json:"success"`
	Token    string            `json:"token"`
	Corretor ResumoCorretorDTO `json:"corretor"`
}

func montarResumo(c *Corretor) ResumoCorretorDTO {
	return ResumoCorretorDTO{
		ID:          c.ID,
		Nome:        c.Nome,
		Email:       c.Email,
		Telefone:    c.Telefone,
		TipoUsuario: c.TipoUsuario,
	}
}
