package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/weaviq/internal/domain/query"
	"github.com/kailas-cloud/weaviq/internal/domain/schema"
	"github.com/kailas-cloud/weaviq/internal/transport/weaviate"
	"github.com/kailas-cloud/weaviq/internal/usecase/template"
	"github.com/kailas-cloud/weaviq/internal/version"
)

var (
	endpoint   string
	apiKey     string
	username   string
	password   string
	timeoutSec int

	outputFile string
	limit      int
	searchText string
	concepts   string
	tenant     string
	prompt     string
	alpha      float64
	certainty  float64
	distance   float64
	static     bool
)

var rootCmd = &cobra.Command{
	Use:   "weaviqctl",
	Short: "Generate and run Weaviate GraphQL queries from the command line",
	Long: `weaviqctl builds ready-to-edit GraphQL queries for a Weaviate instance.
When an endpoint is reachable it reads the live schema and fills in real
property names; otherwise it falls back to commented placeholders.`,
	Version: version.Version,
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available query templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, e := range template.Catalog() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-25s %s\n", e.Name, e.Description)
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate <template> <collection>",
	Short: "Generate a GraphQL query from a template",
	Long: `Generate renders a catalog template (see "weaviqctl templates") for a
collection. The template argument also accepts raw query text containing
placeholder tokens such as {nearVectorQuery}.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate and sanitize a GraphQL query",
	Long:  `Validate reads a query from a file or stdin, checks it syntactically, and prints the sanitized text. Exits non-zero when the query is invalid.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

var schemaCmd = &cobra.Command{
	Use:   "schema [collection]",
	Short: "Show the instance schema",
	Long:  `Schema lists the collections of the target instance, or prints one collection definition as JSON.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSchema,
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a GraphQL query against the instance",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuery,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:8080/v1", "Weaviate REST endpoint")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Weaviate API key (bearer auth)")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "Weaviate username (basic auth)")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "Weaviate password (basic auth)")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 30, "Request timeout in seconds")

	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().IntVarP(&limit, "limit", "l", 0, "Result limit (default: 10)")
	generateCmd.Flags().StringVarP(&searchText, "query", "q", "", "Search text for hybrid/bm25 templates")
	generateCmd.Flags().StringVarP(&concepts, "concepts", "c", "", "Concepts for nearText templates (comma-separated)")
	generateCmd.Flags().StringVar(&tenant, "tenant", "", "Tenant name for multi-tenant collections")
	generateCmd.Flags().StringVar(&prompt, "prompt", "", "Prompt for the generative template")
	generateCmd.Flags().Float64Var(&alpha, "alpha", -1, "Hybrid blend weight (0..1)")
	generateCmd.Flags().Float64Var(&certainty, "certainty", -1, "Similarity certainty threshold")
	generateCmd.Flags().Float64Var(&distance, "distance", -1, "Similarity distance threshold (overrides certainty)")
	generateCmd.Flags().BoolVar(&static, "static", false, "Skip the schema fetch and generate placeholders only")

	rootCmd.AddCommand(templatesCmd, generateCmd, validateCmd, schemaCmd, runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient() *weaviate.Client {
	return weaviate.NewClient(&weaviate.Config{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Username: username,
		Password: password,
		Timeout:  time.Duration(timeoutSec) * time.Second,
		Logger:   zap.NewNop(),
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	name, collection := args[0], args[1]
	ctx := context.Background()

	var payload *schema.Payload
	if !static {
		p, err := newClient().Schema(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: schema fetch failed, generating without schema: %v\n", err)
		} else {
			payload = p
		}
	}

	cfg := &query.Config{
		Query:  searchText,
		Tenant: tenant,
		Prompt: prompt,
	}
	if concepts != "" {
		for _, c := range strings.Split(concepts, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.Concepts = append(cfg.Concepts, c)
			}
		}
	}
	if alpha >= 0 {
		cfg.Alpha = &alpha
	}
	if certainty >= 0 {
		cfg.Certainty = &certainty
	}
	if distance >= 0 {
		cfg.Distance = &distance
	}

	out := template.Process(name, collection, limit, payload, cfg)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	text, err := readQueryArg(args)
	if err != nil {
		return err
	}

	v := query.ValidateAndSanitize(text)
	if !v.Valid {
		for _, msg := range v.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("query is invalid")
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Sanitized)
	return nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	payload, err := newClient().Schema(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch schema: %w", err)
	}

	if len(args) == 1 {
		class := schema.Lookup(payload, args[0])
		if class == nil {
			return fmt.Errorf("collection %q not found", args[0])
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(class)
	}

	for _, c := range payload.Classes {
		fmt.Fprintf(cmd.OutOrStdout(), "%-30s %d properties\n", c.CollectionName(), len(c.Properties))
	}
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	text, err := readQueryArg(args)
	if err != nil {
		return err
	}

	v := query.ValidateAndSanitize(text)
	if !v.Valid {
		for _, msg := range v.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("query is invalid")
	}

	ctx := context.Background()
	resp, err := newClient().RunGraphQL(ctx, v.Sanitized, nil)
	if err != nil {
		return fmt.Errorf("failed to run query: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// readQueryArg reads the query text from the file argument, or stdin when no
// argument is given.
func readQueryArg(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read query file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
