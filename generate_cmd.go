package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ztrade/launchweek/generate"
)

const (
	defaultMarkdownWidth = 80
	minMarkdownWidth     = 20
)

func generateCmd() *cobra.Command {
	var (
		kind   string
		inputs []string
		raw    bool
		prompt bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draft launch content with the configured LLM",
		Long: `Draft launch content with the configured LLM.

Examples:
  launchweek generate --kind announcement --input featureName="Edge Functions 2.0" --input keyBenefit="50% faster"
  launchweek generate --kind faq --input featureInfo="pgvector in every project" --raw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := generate.ParseKind(kind)
			if err != nil {
				return err
			}
			in, err := parseInputs(inputs)
			if err != nil {
				return err
			}

			var text string
			if prompt {
				text, err = generate.Prompt(k, in)
			} else {
				text, err = newGenerator(cmd.Context(), cfg).Generate(cmd.Context(), k, in)
			}
			if err != nil {
				return err
			}

			if !raw {
				if rendered, err := renderMarkdown(text, terminalWidth()); err == nil {
					text = rendered
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "content kind: announcement, social, developer, faq, competitive")
	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "input as key=value (repeatable)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown without rendering")
	cmd.Flags().BoolVar(&prompt, "prompt", false, "print the prompt instead of calling the LLM")
	cmd.MarkFlagRequired("kind")
	return cmd
}

func parseInputs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid input %q (want key=value)", p)
		}
		out[k] = v
	}
	return out, nil
}

func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return defaultMarkdownWidth
}

func renderMarkdown(text string, width int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if width < minMarkdownWidth {
		width = minMarkdownWidth
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}
