package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmoreira/cityatlas/pkg/cache"
	apperrors "github.com/dmoreira/cityatlas/pkg/errors"
	"github.com/dmoreira/cityatlas/pkg/render"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		cityID   int
		tree     string
		balanced bool
		out      string
		format   string
		noCache  bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the sample atlas (a city's routes or a search tree) with Graphviz",
		Long: `Render produces a DOT, SVG or PNG picture of the built-in sample atlas.

Pick a target with --city (a city's route graph) or --tree (the AVL
registry tree, or its BST export; add --balanced for the post-DSW shape).
SVG and PNG output is cached by content hash under the configured cache
directory; --no-cache bypasses it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = c.Config.Render.Format
			}
			dot, err := c.renderDOT(cityID, tree, balanced)
			if err != nil {
				return err
			}
			data, err := c.renderBytes(cmd.Context(), dot, format, noCache)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write %s", out)
			}
			c.Logger.Info("rendered", "target", out, "format", format, "bytes", len(data))
			return nil
		},
	}
	cmd.Flags().IntVar(&cityID, "city", 0, "render the route graph of this city ID")
	cmd.Flags().StringVar(&tree, "tree", "", "render a search tree: avl or bst")
	cmd.Flags().BoolVar(&balanced, "balanced", false, "with --tree bst, apply the DSW balance first")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot, svg or png (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the render cache")
	cmd.MarkFlagsMutuallyExclusive("city", "tree")
	return cmd
}

func (c *CLI) renderDOT(cityID int, tree string, balanced bool) (string, error) {
	reg := seedAtlas(c.Config)
	switch {
	case cityID != 0:
		city, ok := reg.Find(cityID)
		if !ok {
			return "", apperrors.New(apperrors.ErrCodeNotFound, "city %d not in the sample atlas", cityID)
		}
		return render.GraphDOT(city.Routes, render.Options{Name: city.Name}), nil
	case tree == "avl":
		return render.AVLTreeDOT(reg.Tree(), render.Options{Name: "atlas", ShowHeights: true}), nil
	case tree == "bst":
		bst := reg.ExportBST()
		if balanced {
			bst.Balance()
		}
		return render.BSTTreeDOT(bst, render.Options{Name: "atlas"}), nil
	case tree != "":
		return "", apperrors.New(apperrors.ErrCodeInvalidInput, "unknown tree %q (want avl or bst)", tree)
	default:
		return "", apperrors.New(apperrors.ErrCodeInvalidInput, "pick a target with --city or --tree")
	}
}

func (c *CLI) renderBytes(ctx context.Context, dot, format string, noCache bool) ([]byte, error) {
	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg", "png":
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown format %q (want dot, svg or png)", format)
	}

	store := c.renderCache(noCache)
	defer store.Close()

	key := cache.Hash([]byte(format + "\x00" + dot))
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		c.Logger.Debug("render cache hit", "key", key[:12])
		return data, nil
	}

	var (
		data []byte
		err  error
	)
	if format == "svg" {
		data, err = render.SVG(ctx, dot)
	} else {
		data, err = render.PNG(ctx, dot)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "graphviz render")
	}
	if err := store.Set(ctx, key, data, 0); err != nil {
		c.Logger.Warn("render cache write failed", "err", err)
	}
	return data, nil
}

func (c *CLI) renderCache(noCache bool) cache.Cache {
	dir := c.Config.Render.CacheDir
	if noCache || dir == "off" {
		return cache.NewNullCache()
	}
	if dir == "" {
		dir = defaultCacheDir()
	}
	store, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("render cache unavailable", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return store
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return fmt.Sprintf("%s/cityatlas", os.TempDir())
	}
	return fmt.Sprintf("%s/cityatlas", base)
}
