package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/vfg2006/nexscore-api/infrastructure/database"
	"github.com/vfg2006/nexscore-api/infrastructure/migration"
	"github.com/vfg2006/nexscore-api/internal/config"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de carga de NexScore...")
}

func main() {
	setupLogger()

	file := flag.String("file", "nex_score.json", "arquivo JSON com os registros (formato de /nex-score/excel)")
	createSchema := flag.Bool("create-schema", true, "cria a tabela nex_score caso não exista")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	log.Printf("Conexão estabelecida (%s)", conn.Driver)

	if *createSchema {
		if err := database.EnsureSchema(ctx, conn); err != nil {
			log.Fatalf("ERRO ao criar schema: %v", err)
		}
	}

	input, err := os.Open(*file)
	if err != nil {
		log.Fatalf("ERRO ao abrir arquivo %s: %v", *file, err)
	}
	defer input.Close()

	records, err := migration.ReadNexScores(input)
	if err != nil {
		log.Fatalf("ERRO ao ler arquivo %s: %v", *file, err)
	}
	log.Printf("Total de %d registros definidos para inserção", len(records))

	inserted, err := migration.LoadNexScores(ctx, conn, records)
	if err != nil {
		log.Fatalf("ERRO na carga: %v", err)
	}

	log.Printf("Carga concluída: %d registros inseridos", inserted)
}
