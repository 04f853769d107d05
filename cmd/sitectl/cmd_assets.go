package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"vitrine-backend/internal/assets"

	"github.com/spf13/cobra"
)

var assetsBaseURL string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Inspect the asset registry",
}

var assetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every category, name and resolved URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := assets.Default(resolveAssetBase())
		if err != nil {
			return err
		}
		all := reg.All()
		for _, category := range assets.Categories {
			for name, u := range all[category] {
				fmt.Fprintf(cmd.OutOrStdout(), "%s/%s\t%s\n", category, name, u)
			}
		}
		return nil
	},
}

var assetsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch every registered image and report the ones that fail",
	RunE:  runAssetsCheck,
}

func init() {
	assetsCmd.PersistentFlags().StringVar(&assetsBaseURL, "base-url", "", "Base URL for relative paths (default: ASSET_BASE_URL)")
	assetsCmd.AddCommand(assetsListCmd)
	assetsCmd.AddCommand(assetsCheckCmd)
}

func resolveAssetBase() string {
	if assetsBaseURL != "" {
		return assetsBaseURL
	}
	return os.Getenv("ASSET_BASE_URL")
}

func runAssetsCheck(cmd *cobra.Command, args []string) error {
	base := resolveAssetBase()
	if base == "" {
		return fmt.Errorf("a base URL is required to fetch relative asset paths (--base-url or ASSET_BASE_URL)")
	}
	reg, err := assets.Default(base)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	return checkAssets(ctx, &http.Client{}, reg.URLs(), cmd.OutOrStdout())
}

func checkAssets(ctx context.Context, client *http.Client, urls []string, out io.Writer) error {
	failed := assets.Check(ctx, client, urls)
	for _, f := range failed {
		fmt.Fprintf(out, "FAIL %s\n", f.Error())
	}
	fmt.Fprintf(out, "%d of %d assets loaded\n", len(urls)-len(failed), len(urls))
	if len(failed) > 0 {
		return fmt.Errorf("%d assets failed to load", len(failed))
	}
	return nil
}
