// Command oracle-cli evaluates one command line and prints the panel as plain text.
//
//	oracle-cli /arb 2.2,2.3 100
//	oracle-cli fib 110000 109000 109550 4h
package main

import (
	"context"
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"

	"TriOracle/internal/analysis"
	"TriOracle/internal/command"
	"TriOracle/internal/config"
	"TriOracle/pkg/logger"
)

var tagPattern = regexp.MustCompile(`</?[a-z]+>`)

// plain strips the HTML used for Telegram.
func plain(s string) string {
	return html.UnescapeString(tagPattern.ReplaceAllString(s, ""))
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println(plain(command.Help()))
		os.Exit(2)
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateAnalysis(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init("warn", "development"); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	line := strings.Join(os.Args[1:], " ")
	if !strings.HasPrefix(line, "/") {
		line = "/" + line
	}

	router := command.NewRouter(analysis.NewEngine(cfg.Thresholds()), cfg.Analysis.DefaultBankroll, logger.Get())
	out, err := router.Evaluate(context.Background(), line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(plain(out))
}
