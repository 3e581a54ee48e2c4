package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-stache/pkg/logging"
	"github.com/goliatone/go-stache/pkg/value"
)

func newRootCmd() *cobra.Command {
	var (
		keyPath   string
		verbosity int
	)

	cmd := &cobra.Command{
		Use:   "stache-inspect <file.yaml>",
		Short: "Inspect how a YAML document boxes into template values",
		Long: `stache-inspect loads a YAML document, boxes it into the go-stache value
model, and prints the resulting value tree with variant and truthiness
annotations. With --key it resolves a dotted key path the way the engine's
scope resolution would, one Key() step per segment.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			return runInspect(cmd.OutOrStdout(), args[0], keyPath)
		},
	}

	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "resolve a dotted key path instead of printing the tree")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	return cmd
}

func runInspect(out io.Writer, path, keyPath string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	v := value.BoxYAMLNode(&node)
	if keyPath != "" {
		for _, segment := range strings.Split(keyPath, ".") {
			v = v.Key(segment)
		}
		describe(out, keyPath, v, 0)
		return nil
	}

	describe(out, ".", v, 0)
	return nil
}

func describe(out io.Writer, label string, v value.Value, depth int) {
	indent := strings.Repeat("  ", depth)

	switch v.Kind() {
	case value.KindMapping:
		m, _ := v.AsMap()
		fmt.Fprintf(out, "%s%s: mapping (%d entries, truthy=%t)\n", indent, label, len(m), v.IsTruthy())
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			describe(out, k, m[k], depth+1)
		}
	case value.KindSequence:
		elems, _ := v.AsSlice()
		fmt.Fprintf(out, "%s%s: sequence (%d elements, truthy=%t)\n", indent, label, len(elems), v.IsTruthy())
		for i, el := range elems {
			describe(out, fmt.Sprintf("[%d]", i), el, depth+1)
		}
	default:
		fmt.Fprintf(out, "%s%s: %s %q (truthy=%t)\n", indent, label, v.Kind(), v.String(), v.IsTruthy())
	}
}
