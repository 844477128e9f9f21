package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/PySecNinja/cribl-cloud-explorer/pkg/cribl"
)

// promptSettings interactively fills whatever connection parameters are
// still missing. The token is read without echo.
func promptSettings(s *cribl.Settings) error {
	reader := bufio.NewReader(os.Stdin)

	for !validBaseURL(s.BaseURL) {
		fmt.Print("Cribl Cloud base URL (e.g. https://main-acme.cribl.cloud): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read base URL: %w", err)
		}
		s.BaseURL = strings.TrimSpace(line)
		switch {
		case s.BaseURL == "":
			fmt.Println("URL cannot be empty.")
		case !validBaseURL(s.BaseURL):
			fmt.Println("URL must start with http:// or https://")
			s.BaseURL = ""
		}
	}

	for s.Token == "" {
		fmt.Print("Bearer token (hidden): ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		s.Token = strings.TrimSpace(string(raw))
		if s.Token == "" {
			fmt.Println("Token cannot be empty.")
		}
	}
	return nil
}

func validBaseURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
