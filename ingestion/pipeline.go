package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/anshita195/blogsearch/classifier"
	"github.com/anshita195/blogsearch/core"
	"github.com/anshita195/blogsearch/storage"
)

// RawPage is one crawled page as handed to the pipeline. Vector is optional;
// when the crawler already computed an embedding it is reused instead of
// calling the embedding service again.
type RawPage struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"meta_description"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	FetchedAt   time.Time `json:"fetched_at"`
	Vector      []float32 `json:"vector,omitempty"`
}

// BatchResult summarizes one ingestion or reclassification run.
type BatchResult struct {
	Accepted  int
	Rejected  int
	Undecided int
	Failed    int
}

// Pipeline classifies crawled pages and stores the accepted ones. Pages in
// a batch are processed concurrently; one bad page never fails the batch.
type Pipeline struct {
	documents storage.DocumentRepository
	verdicts  storage.VerdictRepository
	extractor *classifier.Extractor
	ensemble  *classifier.Ensemble
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent classification.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	documents storage.DocumentRepository,
	verdicts storage.VerdictRepository,
	extractor *classifier.Extractor,
	ensemble *classifier.Ensemble,
	opts ...Option,
) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if verdicts == nil {
		return nil, ErrVerdictRepositoryRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if ensemble == nil {
		return nil, ErrEnsembleRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents: documents,
		verdicts:  verdicts,
		extractor: extractor,
		ensemble:  ensemble,
		pool:      pool,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest classifies a batch of crawled pages and stores the accepted ones.
// It returns when the whole batch is processed. Per-page failures are
// logged, counted in the result, and do not affect the other pages.
func (p *Pipeline) Ingest(ctx context.Context, pages []*RawPage) (*BatchResult, error) {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result BatchResult
	)

	for _, page := range pages {
		page := page
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			verdict, err := p.processPage(ctx, page)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Error("error ingesting page", "url", page.URL, "err", err)
				result.Failed++
				return
			}
			switch verdict.Label {
			case core.LabelPersonal:
				result.Accepted++
			case core.LabelCorporate:
				result.Rejected++
			default:
				result.Undecided++
			}
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			result.Failed++
			mu.Unlock()
		}
	}

	wg.Wait()

	p.logger.Info("ingestion batch complete",
		"pages", len(pages), "accepted", result.Accepted,
		"rejected", result.Rejected, "undecided", result.Undecided,
		"failed", result.Failed)

	return &result, nil
}

// processPage classifies one page and persists its verdict. Only pages
// labeled personal enter the document store.
func (p *Pipeline) processPage(ctx context.Context, page *RawPage) (*core.ClassificationVerdict, error) {
	fetchedAt := page.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	doc := &core.Document{
		Id:          core.IDFromURL(page.URL),
		URL:         page.URL,
		Domain:      core.DomainFromURL(page.URL),
		Title:       page.Title,
		Author:      page.Author,
		Description: page.Description,
		Content:     page.Content,
		Vector:      page.Vector,
		FetchedAt:   fetchedAt,
	}
	if err := core.ValidateDocument(doc); err != nil {
		return nil, err
	}

	features, err := p.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}

	verdict, err := p.ensemble.Classify(features)
	if err != nil {
		return nil, err
	}

	if err := p.verdicts.AddVerdicts(ctx, verdict); err != nil {
		return nil, err
	}

	if verdict.Label == core.LabelPersonal {
		doc.Confidence = verdict.Confidence
		doc.Label = verdict.Label
		if _, err := p.documents.AddDocuments(ctx, doc); err != nil {
			return nil, err
		}
	}

	return verdict, nil
}

// Reclassify reruns the classifier over every stored document, refreshing
// embeddings, verdicts, and confidences. Documents that no longer classify
// as personal
// are removed from the store; rebuild the index afterwards to make the
// changes searchable.
func (p *Pipeline) Reclassify(ctx context.Context) (*BatchResult, error) {
	docs, err := p.documents.AllDocuments(ctx)
	if err != nil {
		return nil, err
	}

	var result BatchResult
	for _, doc := range docs {
		// Drop the stored embedding so extraction computes a fresh one;
		// otherwise a changed embedding model would never take effect.
		doc.Vector = nil

		features, err := p.extractor.Extract(ctx, doc)
		if err != nil {
			p.logger.Error("error reclassifying document", "url", doc.URL, "err", err)
			result.Failed++
			continue
		}

		verdict, err := p.ensemble.Classify(features)
		if err != nil {
			p.logger.Error("error reclassifying document", "url", doc.URL, "err", err)
			result.Failed++
			continue
		}

		if err := p.verdicts.AddVerdicts(ctx, verdict); err != nil {
			result.Failed++
			continue
		}

		switch verdict.Label {
		case core.LabelPersonal:
			doc.Confidence = verdict.Confidence
			doc.Label = verdict.Label
			if _, err := p.documents.UpdateDocuments(ctx, doc); err != nil {
				result.Failed++
				continue
			}
			result.Accepted++
		default:
			if err := p.documents.DeleteDocuments(ctx, doc.Id); err != nil {
				result.Failed++
				continue
			}
			if verdict.Label == core.LabelCorporate {
				result.Rejected++
			} else {
				result.Undecided++
			}
		}
	}

	p.logger.Info("reclassification complete",
		"documents", len(docs), "kept", result.Accepted,
		"rejected", result.Rejected, "undecided", result.Undecided,
		"failed", result.Failed)

	return &result, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
