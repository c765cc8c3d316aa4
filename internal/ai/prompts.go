package ai

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templateFS embed.FS

// PromptManager loads the system-prompt presets shipped with the binary.
type PromptManager struct {
	prompts map[string]string // mode -> system prompt
}

type promptTemplate struct {
	SystemPrompt string `yaml:"system_prompt"`
}

func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{prompts: make(map[string]string)}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var tpl promptTemplate
		if err := yaml.Unmarshal(data, &tpl); err != nil {
			return nil, fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}

		pm.prompts[strings.TrimSuffix(entry.Name(), ".yaml")] = tpl.SystemPrompt
	}

	return pm, nil
}

// SystemPrompt returns the preset for a mode.
func (pm *PromptManager) SystemPrompt(mode string) (string, error) {
	prompt, ok := pm.prompts[mode]
	if !ok {
		return "", fmt.Errorf("template not found for mode: %s", mode)
	}
	return prompt, nil
}
