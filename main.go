package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/sdeodharms/bicep/internal/server"
)

// Version will be set during the build process using ldflags
var Version = "(dev) v0.0.0"

func main() {
	versionFlag := flag.Bool("version", false, "Print the version of the program")
	logfileFlag := flag.String("logfile", "", "Path to log file")
	typesFlag := flag.String("types", "", "Path to the resource type catalog database")
	ingestFlag := flag.String("ingest", "", "Ingest a type manifest into the catalog database and exit")
	flag.Parse()

	// Version tag
	if *versionFlag {
		fmt.Printf("bicep-ls version %s\n", Version)
		return
	}

	// Optional .env for ARM endpoint and token.
	_ = godotenv.Load()

	catalogPath := *typesFlag
	if catalogPath == "" {
		catalogPath = os.Getenv("BICEP_TYPES_DB")
	}

	// Side command: seed the catalog database, then exit.
	if *ingestFlag != "" {
		if err := runIngest(catalogPath, *ingestFlag); err != nil {
			log.Fatalf("Ingest failed: %v", err)
		}
		return
	}

	// Logging
	if *logfileFlag != "" {
		logFile, err := os.OpenFile(*logfileFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		log.SetFlags(log.Ldate | log.Ltime | log.Llongfile)
		log.Println("Starting bicep-ls...")
	} else {
		log.SetOutput(io.Discard)
	}
	commonlog.Configure(2, nil) // Logger used by glsp

	endpoint := os.Getenv("ARM_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://management.azure.com"
	}

	// Initialize the server
	server, err := server.NewServer(server.Options{
		CatalogPath: catalogPath,
		ARMEndpoint: endpoint,
		ARMToken:    os.Getenv("ARM_TOKEN"),
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Run the server
	if err := server.RunStdio(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
