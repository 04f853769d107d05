package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"vitrine-backend/internal/app"
	"vitrine-backend/internal/blogposts"
	"vitrine-backend/internal/cache"
	"vitrine-backend/internal/casestudies"
	"vitrine-backend/internal/companies"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

var (
	seedFilePath string
	seedForce    bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo companies, case studies and blog posts",
	Long: `Seed inserts fixture content through the regular services, so every record
is validated exactly like an API create. A collection that already holds data
is skipped unless --force is given.`,
	RunE: runSeedCmd,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFilePath, "file", "f", "", "YAML fixture file (default: built-in fixtures)")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Insert even into non-empty collections")
}

type seedData struct {
	Companies   []companies.CreateRequest   `yaml:"companies"`
	CaseStudies []casestudies.CreateRequest `yaml:"case_studies"`
	BlogPosts   []blogposts.CreateRequest   `yaml:"blog_posts"`
}

func parseSeed(raw []byte) (seedData, error) {
	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return seedData{}, fmt.Errorf("parse seed file: %w", err)
	}
	return data, nil
}

func runSeedCmd(cmd *cobra.Command, args []string) error {
	raw := defaultSeed
	if seedFilePath != "" {
		b, err := os.ReadFile(seedFilePath)
		if err != nil {
			return err
		}
		raw = b
	}
	data, err := parseSeed(raw)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	svc, cacheStore, cleanup, err := openServicesWithCache(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return seed(ctx, svc, cacheStore, data, seedForce, cmd.OutOrStdout())
}

// seed inserts the fixtures and drops the cached public listing of every
// collection it wrote to.
func seed(ctx context.Context, svc *app.Services, c cache.Cache, data seedData, force bool, out io.Writer) error {
	existing, err := svc.Companies.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 || force {
		for _, req := range data.Companies {
			if _, err := svc.Companies.Create(ctx, req); err != nil {
				return fmt.Errorf("company %q: %w", req.Name, err)
			}
		}
		fmt.Fprintf(out, "companies: %d inserted\n", len(data.Companies))
		if err := c.Delete(ctx, companies.ListCacheKey); err != nil {
			return fmt.Errorf("invalidate %s: %w", companies.ListCacheKey, err)
		}
	} else {
		fmt.Fprintf(out, "companies: skipped, %d already present\n", len(existing))
	}

	studies, err := svc.CaseStudies.List(ctx)
	if err != nil {
		return err
	}
	if len(studies) == 0 || force {
		for _, req := range data.CaseStudies {
			if _, err := svc.CaseStudies.Create(ctx, req); err != nil {
				return fmt.Errorf("case study %q: %w", req.Title, err)
			}
		}
		fmt.Fprintf(out, "case studies: %d inserted\n", len(data.CaseStudies))
		if err := c.Delete(ctx, casestudies.ListCacheKey); err != nil {
			return fmt.Errorf("invalidate %s: %w", casestudies.ListCacheKey, err)
		}
	} else {
		fmt.Fprintf(out, "case studies: skipped, %d already present\n", len(studies))
	}

	posts, err := svc.BlogPosts.List(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 || force {
		for _, req := range data.BlogPosts {
			if _, err := svc.BlogPosts.Create(ctx, req); err != nil {
				return fmt.Errorf("blog post %q: %w", req.Title, err)
			}
		}
		fmt.Fprintf(out, "blog posts: %d inserted\n", len(data.BlogPosts))
		if err := c.Delete(ctx, blogposts.ListCacheKey); err != nil {
			return fmt.Errorf("invalidate %s: %w", blogposts.ListCacheKey, err)
		}
	} else {
		fmt.Fprintf(out, "blog posts: skipped, %d already present\n", len(posts))
	}

	return nil
}
