package main

import (
	"net/http"
	"os"

	"github.com/plansaude/api-corretora/internal/acomodacao"
	"github.com/plansaude/api-corretora/internal/auth"
	"github.com/plansaude/api-corretora/internal/cidade"
	"github.com/plansaude/api-corretora/internal/corretor"
	"github.com/plansaude/api-corretora/internal/modalidade"
	"github.com/plansaude/api-corretora/internal/operadora"
	"github.com/plansaude/api-corretora/internal/orcamento"
	"github.com/plansaude/api-corretora/internal/tabelapreco"
	"github.com/plansaude/api-corretora/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.ConnectDataBase()
	if err != nil {
		logrus.WithError(err).Fatal("erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&cidade.Cidade{},
		&operadora.Operadora{},
		&modalidade.Modalidade{},
		&acomodacao.Acomodacao{},
		&tabelapreco.TabelaPreco{},
		&corretor.Corretor{},
		&orcamento.Orcamento{},
		&auth.RefreshToken{},
	); err != nil {
		logrus.WithError(err).Fatal("erro no AutoMigrate")
	}

	// Handlers
	cidadeHandler := cidade.NewHandler(database)
	operadoraHandler := operadora.NewHandler(database)
	modalidadeHandler := modalidade.NewHandler(database)
	acomodacaoHandler := acomodacao.NewHandler(database)
	tabelaHandler := tabelapreco.NewHandler(database)
	corretorHandler := corretor.NewHandler(database)
	orcamentoHandler := orcamento.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", corretorHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/corretores", corretorHandler.CriarCorretor).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/me", corretorHandler.Me).Methods("GET")

	// Rotas de corretores
	api.HandleFunc("/corretores", corretorHandler.ListarCorretores).Methods("GET")
	api.HandleFunc("/corretores/{id}", corretorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/corretores/{id}", corretorHandler.AtualizarCorretor).Methods("PUT")
	api.HandleFunc("/corretores/{id}", corretorHandler.DeletarCorretor).Methods("DELETE")

	// Rotas de cidades
	api.HandleFunc("/cidades", cidadeHandler.CriarCidade).Methods("POST")
	api.HandleFunc("/cidades", cidadeHandler.ListarCidades).Methods("GET")
	api.HandleFunc("/cidades/{id}", cidadeHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/cidades/{id}", cidadeHandler.AtualizarCidade).Methods("PUT")
	api.HandleFunc("/cidades/{id}", cidadeHandler.DeletarCidade).Methods("DELETE")

	// Rotas de operadoras
	api.HandleFunc("/operadoras", operadoraHandler.CriarOperadora).Methods("POST")
	api.HandleFunc("/operadoras", operadoraHandler.ListarOperadoras).Methods("GET")
	api.HandleFunc("/operadoras/{id}", operadoraHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/operadoras/{id}", operadoraHandler.AtualizarOperadora).Methods("PUT")
	api.HandleFunc("/operadoras/{id}", operadoraHandler.DeletarOperadora).Methods("DELETE")

	// Rotas de modalidades
	api.HandleFunc("/modalidades", modalidadeHandler.CriarModalidade).Methods("POST")
	api.HandleFunc("/modalidades", modalidadeHandler.ListarModalidades).Methods("GET")
	api.HandleFunc("/modalidades/{id}", modalidadeHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/modalidades/{id}", modalidadeHandler.AtualizarModalidade).Methods("PUT")
	api.HandleFunc("/modalidades/{id}", modalidadeHandler.DeletarModalidade).Methods("DELETE")

	// Rotas de acomodações
	api.HandleFunc("/acomodacoes", acomodacaoHandler.CriarAcomodacao).Methods("POST")
	api.HandleFunc("/acomodacoes", acomodacaoHandler.ListarAcomodacoes).Methods("GET")
	api.HandleFunc("/acomodacoes/{id}", acomodacaoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/acomodacoes/{id}", acomodacaoHandler.AtualizarAcomodacao).Methods("PUT")
	api.HandleFunc("/acomodacoes/{id}", acomodacaoHandler.DeletarAcomodacao).Methods("DELETE")

	// Rotas de tabelas de preço
	api.HandleFunc("/precos", tabelaHandler.CriarTabela).Methods("POST")
	api.HandleFunc("/precos", tabelaHandler.ListarTabelas).Methods("GET")
	api.HandleFunc("/precos/{id}", tabelaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/precos/{id}", tabelaHandler.AtualizarTabela).Methods("PUT")
	api.HandleFunc("/precos/{id}", tabelaHandler.DeletarTabela).Methods("DELETE")

	// Rotas de orçamentos
	api.HandleFunc("/orcamentos", orcamentoHandler.CriarOrcamento).Methods("POST")
	api.HandleFunc("/orcamentos", orcamentoHandler.ListarOrcamentos).Methods("GET")
	api.HandleFunc("/orcamentos/{id}", orcamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/orcamentos/{id}/estagio", orcamentoHandler.AtualizarEstagio).Methods("PUT")
	api.HandleFunc("/orcamentos/{id}", orcamentoHandler.DeletarOrcamento).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	logrus.Infof("Servidor rodando em http://localhost:%s", porta)
	logrus.Fatal(http.ListenAndServe(":"+porta, handler))
}
