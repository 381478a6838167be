package notificacao

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
)

// EnviarAlertaCadastro avisa o back office quando um orçamento chega ao
// estágio "cadastrado". Sem WEBHOOK_URL configurada a notificação é ignorada.
func EnviarAlertaCadastro(orcamentoID uint, nomeCliente string, valorTotal float64) {
	url := os.Getenv("WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem":     "Orçamento movido para cadastrado",
		"orcamento_id": fmt.Sprint(orcamentoID),
		"cliente":      nomeCliente,
		"valor_total":  fmt.Sprintf("%.2f", valorTotal),
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		logrus.WithError(err).Warn("erro ao enviar webhook de cadastro")
		return
	}
	defer resp.Body.Close()
}
