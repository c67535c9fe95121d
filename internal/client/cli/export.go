package cli

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/dmitrijs2005/moodkeeper/internal/filex"
	"github.com/dmitrijs2005/moodkeeper/internal/netx"
)

var download = netx.DownloadPresignedURL

// Export asks the server for a records dump and downloads it into the
// configured export directory.
func (a *App) Export(ctx context.Context) error {
	res, err := a.client.Export(ctx)
	if err != nil {
		return err
	}

	dir, err := filex.EnsureDir(a.config.ExportDir)
	if err != nil {
		return err
	}

	f, err := filex.CreateNew(dir, path.Base(res.Key))
	if err != nil {
		return err
	}

	_, err = download(ctx, res.URL, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("downloading export: %w", err)
	}

	a.printf("Exported %d records to %s\n", res.Count, f.Name())
	return nil
}
