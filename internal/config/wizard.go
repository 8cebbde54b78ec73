package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectLayout looks for the usual static and blog directories.
func detectLayout() (static, blogs string) {
	static, blogs = "static", "Blogs"
	for _, dir := range []string{"static", "public", "assets"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			static = dir
			break
		}
	}
	for _, dir := range []string{"Blogs", "blogs", "posts"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			blogs = dir
			break
		}
	}
	return static, blogs
}

// GenerateSecret returns a random hex session secret.
func GenerateSecret() (string, error) {
	b := make([]byte, MinSecretLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio server.")
	fmt.Println()

	cfg := DefaultConfig()
	cfg.StaticDir, cfg.BlogsDir = detectLayout()

	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	staticPrompt := promptui.Prompt{Label: "Static files directory", Default: cfg.StaticDir}
	if cfg.StaticDir, err = staticPrompt.Run(); err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}

	blogsPrompt := promptui.Prompt{Label: "Markdown blog directory", Default: cfg.BlogsDir}
	if cfg.BlogsDir, err = blogsPrompt.Run(); err != nil {
		return nil, fmt.Errorf("blogs dir: %w", err)
	}

	dataPrompt := promptui.Prompt{Label: "Data directory (SQLite database)", Default: cfg.DataDir}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	corsPrompt := promptui.Select{
		Label: "Allow cross-origin calls to the JSON API?",
		Items: []string{"no", "yes"},
	}
	_, cors, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors selection: %w", err)
	}
	cfg.AllowAllOrigins = cors == "yes"

	endpointPrompt := promptui.Prompt{
		Label:   "Remote contact endpoint (blank to store messages locally)",
		Default: "",
	}
	endpoint, err := endpointPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("contact endpoint: %w", err)
	}
	cfg.ContactEndpoint = strings.TrimSpace(endpoint)

	if cfg.SessionSecret, err = GenerateSecret(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
