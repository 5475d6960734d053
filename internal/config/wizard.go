package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/yuanwutong/portfolio/internal/content"
)

// detectContent reports which well-known content files exist under dir.
func detectContent(dir string) (found, missing []string) {
	for _, name := range []string{content.IntroPath, content.ProjectListPath, content.BlogListPath} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err == nil {
			found = append(found, name)
		} else {
			missing = append(missing, name)
		}
	}
	return found, missing
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to portfolio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content directory.
	dirPrompt := promptui.Prompt{
		Label:   "Content directory (holds projects/ and blog/)",
		Default: cfg.ContentDir,
	}
	dir, err := dirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	cfg.ContentDir = dir

	found, missing := detectContent(dir)
	if len(found) > 0 {
		fmt.Printf("Found: %s\n", strings.Join(found, ", "))
	}
	if len(missing) > 0 {
		fmt.Printf("Missing (the page will show placeholders): %s\n", strings.Join(missing, ", "))
	}
	fmt.Println()

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
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

	// 3. Default language.
	langPrompt := promptui.Select{
		Label: "Default language",
		Items: []string{"zh: 中文", "en: English"},
	}
	langIdx, _, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	cfg.DefaultLanguage = []string{"zh", "en"}[langIdx]

	// 4. Visibility policy.
	visPrompt := promptui.Select{
		Label: "Bilingual content display",
		Items: []string{
			"exclusive: show only the current language",
			"legacy:    Chinese mode shows both languages",
		},
	}
	visIdx, _, err := visPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("visibility selection: %w", err)
	}
	cfg.Visibility = []string{"exclusive", "legacy"}[visIdx]

	// 5. Typewriter phrases.
	phrasePrompt := promptui.Prompt{
		Label:   "Hero phrases (comma-separated, blank disables the typewriter)",
		Default: strings.Join(cfg.Hero.Phrases, ", "),
	}
	phraseStr, err := phrasePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("hero phrases: %w", err)
	}
	cfg.Hero.Phrases = splitAndTrim(phraseStr)
	cfg.Hero.Typewriter = len(cfg.Hero.Phrases) > 0

	// 6. Background animation.
	bgPrompt := promptui.Select{
		Label: "Animated particle background",
		Items: []string{"on", "off"},
	}
	bgIdx, _, err := bgPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("background selection: %w", err)
	}
	cfg.Particles.Enabled = bgIdx == 0

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
