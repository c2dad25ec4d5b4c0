package iostore

import (
	"bufio"
	"cmp"
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/taxodb/pkg/taxon"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"golang.org/x/sync/errgroup"
)

// maxBlockSize limits the size of one record block.
const maxBlockSize = 16 * 1024 * 1024

// block is a piece of the corpus text between two separators.
type block struct {
	idx  int
	text string
}

// parsed is the result of parsing one block.
type parsed struct {
	idx int
	raw string
	rec taxon.Record
	err error
}

// corpus keeps indices built from parsed records before they are
// published by the store.
type corpus struct {
	records  map[int]taxon.Record
	children map[int][]int
	ids      []int
	stats    taxonomy.Stats
}

// parseCorpus reads blocks from r, parses them concurrently and builds
// indices of the corpus. Malformed blocks are logged and skipped.
// If the same ID appears several times, the block that is closer to the
// end of the corpus wins.
func parseCorpus(
	ctx context.Context,
	r io.Reader,
	jobs int,
	bar *pb.ProgressBar,
) (*corpus, error) {
	chIn := make(chan block)
	chOut := make(chan parsed)

	g, gCtx := errgroup.WithContext(ctx)

	var blocks int
	g.Go(func() error {
		defer close(chIn)
		var err error
		blocks, err = readBlocks(gCtx, r, chIn, bar)
		return err
	})

	if jobs <= 0 {
		jobs = 1
	}

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return parseWorker(gCtx, chIn, chOut)
		})
	}

	go func() {
		wg.Wait()
		close(chOut)
	}()

	var c *corpus
	g.Go(func() error {
		var err error
		c, err = collect(gCtx, chOut)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	c.stats.Blocks = blocks
	return c, nil
}

// readBlocks splits the corpus into blocks. An empty block between two
// separators is sent like any other block and ends up as malformed.
func readBlocks(
	ctx context.Context,
	r io.Reader,
	chIn chan<- block,
	bar *pb.ProgressBar,
) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxBlockSize)
	sc.Split(taxon.ScanBlocks)

	var count int
	for sc.Scan() {
		text := sc.Text()
		if bar != nil {
			bar.Add(len(text) + len(taxon.Separator) + 1)
		}
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		case chIn <- block{idx: count, text: text}:
		}
		count++
	}
	return count, sc.Err()
}

func parseWorker(
	ctx context.Context,
	chIn <-chan block,
	chOut chan<- parsed,
) error {
	for b := range chIn {
		rec, err := taxon.ParseRecord(b.text)
		select {
		case <-ctx.Done():
			for range chIn {
			}
			return ctx.Err()
		case chOut <- parsed{idx: b.idx, raw: b.text, rec: rec, err: err}:
		}
	}
	return nil
}

// collect receives parsed blocks and builds the corpus indices.
func collect(ctx context.Context, chOut <-chan parsed) (*corpus, error) {
	records := make(map[int]taxon.Record)
	recIdx := make(map[int]int)
	var stats taxonomy.Stats

	for p := range chOut {
		if err := ctx.Err(); err != nil {
			for range chOut {
			}
			return nil, err
		}

		if p.err != nil {
			stats.Malformed++
			slog.Warn("Skipping malformed record",
				"block", p.idx+1, "error", p.err, "raw", p.raw)
			continue
		}

		id := p.rec.ID
		if idx, ok := recIdx[id]; ok {
			stats.Duplicates++
			slog.Warn("Duplicate record ID, the later record is kept",
				"id", id, "block", max(idx, p.idx)+1)
			if idx > p.idx {
				continue
			}
		}
		records[id] = p.rec
		recIdx[id] = p.idx
	}

	// workers finish in random order, indices follow the corpus order
	ids := make([]int, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b int) int {
		return cmp.Compare(recIdx[a], recIdx[b])
	})

	children := make(map[int][]int)
	for _, id := range ids {
		parent, ok := records[id].Parent()
		if !ok {
			continue
		}
		if parent == taxon.RootSentinel {
			stats.Roots++
		}
		children[parent] = append(children[parent], id)
	}

	slices.Sort(ids)
	stats.Records = len(records)

	res := corpus{
		records:  records,
		children: children,
		ids:      ids,
		stats:    stats,
	}
	return &res, nil
}
