package tablestore

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/radiobeam"
	"github.com/hupe1980/radiobeam/fitstable"
)

// ReadBeams fetches a FITS file from the store and builds a beam collection
// from its first binary table carrying BMAJ/BMIN/BPA columns.
func ReadBeams(ctx context.Context, store Store, name string, opts ...radiobeam.Option) (*radiobeam.Beams, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	data, err := ReadAll(ctx, b)
	if err != nil {
		return nil, err
	}

	tables, err := fitstable.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for _, t := range tables {
		if t.HasColumn("BMAJ") && t.HasColumn("BMIN") && t.HasColumn("BPA") {
			return radiobeam.FromBinTable(t, opts...)
		}
	}
	return nil, fmt.Errorf("%s: no beams table found", name)
}

// ReadBeamsMulti fetches several beam tables concurrently. Results are
// returned in input order; the first failure cancels the remaining
// fetches.
func ReadBeamsMulti(ctx context.Context, store Store, names []string, opts ...radiobeam.Option) ([]*radiobeam.Beams, error) {
	out := make([]*radiobeam.Beams, len(names))

	g, ctx := errgroup.WithContext(ctx)
	// Limit concurrency to avoid FD exhaustion or rate limits
	g.SetLimit(8)

	for i, name := range names {
		g.Go(func() error {
			beams, err := ReadBeams(ctx, store, name, opts...)
			if err != nil {
				return err
			}
			out[i] = beams
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
