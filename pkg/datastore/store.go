package datastore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"pathfinder-be/internal/entity"
	"pathfinder-be/internal/pkg/logger"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const logModule = "DATASTORE"

// Store holds the three datasets. It is filled once by LoadAll and is
// read-only afterwards; every accessor works on an immutable snapshot.
type Store struct {
	fetcher      Fetcher
	fetchTimeout time.Duration
	logger       logger.ILogger
	validate     *validator.Validate

	snap atomic.Pointer[snapshot]

	loadOnce  sync.Once
	mu        sync.Mutex
	ready     chan struct{}
	callbacks []func()
}

type snapshot struct {
	career   *entity.CareerDataset
	streams  *entity.StreamsDataset
	exams    *entity.ExamsDataset
	degraded []DatasetName
	warnings []string
	loadedAt time.Time

	fingerprint string
}

func emptySnapshot() *snapshot {
	return &snapshot{
		career:   entity.NewCareerDataset(),
		streams:  entity.NewStreamsDataset(),
		exams:    entity.NewExamsDataset(),
		degraded: []DatasetName{},
		warnings: []string{},
	}
}

// NewStore creates a store that is not ready yet. A zero fetchTimeout leaves
// fetches unbounded.
func NewStore(fetcher Fetcher, fetchTimeout time.Duration, log logger.ILogger) *Store {
	s := &Store{
		fetcher:      fetcher,
		fetchTimeout: fetchTimeout,
		logger:       log,
		validate:     validator.New(),
		ready:        make(chan struct{}),
	}
	s.snap.Store(emptySnapshot())
	return s
}

// LoadAll fetches the three datasets concurrently and marks the store ready
// once all of them settled. A failed dataset is replaced by its empty default,
// so LoadAll never fails. Only the first call loads; later calls wait for it.
func (s *Store) LoadAll(ctx context.Context) {
	s.loadOnce.Do(func() {
		s.load(ctx)
	})
}

func (s *Store) load(ctx context.Context) {
	ctx, span := otel.Tracer("pathfinder/datastore").Start(ctx, "datastore.LoadAll")
	defer span.End()

	start := time.Now()
	snap := &snapshot{}
	var careerOK, streamsOK, examsOK bool
	var digests [3]uint64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.career, digests[0], careerOK = loadDocument(gctx, s, DatasetCareer,
			func() *entity.CareerDataset { return new(entity.CareerDataset) }, entity.NewCareerDataset)
		return nil
	})
	g.Go(func() error {
		snap.streams, digests[1], streamsOK = loadDocument(gctx, s, DatasetStreams,
			func() *entity.StreamsDataset { return new(entity.StreamsDataset) }, entity.NewStreamsDataset)
		return nil
	})
	g.Go(func() error {
		snap.exams, digests[2], examsOK = loadDocument(gctx, s, DatasetExams,
			func() *entity.ExamsDataset { return new(entity.ExamsDataset) }, entity.NewExamsDataset)
		return nil
	})
	_ = g.Wait() // loaders never return an error

	snap.degraded = []DatasetName{}
	for i, ok := range []bool{careerOK, streamsOK, examsOK} {
		if !ok {
			snap.degraded = append(snap.degraded, AllDatasets[i])
		}
	}
	snap.warnings = s.validateSnapshot(snap)
	snap.fingerprint = fingerprint(digests)
	snap.loadedAt = time.Now()

	span.SetAttributes(
		attribute.Int("datastore.degraded", len(snap.degraded)),
		attribute.Int("datastore.warnings", len(snap.warnings)),
	)

	s.logger.Info(logModule, "All datasets settled", map[string]interface{}{
		"duration_ms": time.Since(start).Milliseconds(),
		"streams":     len(snap.career.Streams),
		"degraded":    snap.degraded,
		"warnings":    len(snap.warnings),
	})

	s.markReady(snap)
}

type document interface {
	Normalize()
}

// loadDocument returns the decoded document, the xxhash of its raw bytes
// (0 on failure) and whether it loaded.
func loadDocument[T document](ctx context.Context, s *Store, name DatasetName, fresh, fallback func() T) (T, uint64, bool) {
	doc := fresh()
	digest, err := s.fetchDocument(ctx, name, doc)
	if err != nil {
		s.logger.Warn(logModule, "Dataset load failed, using empty default", map[string]interface{}{
			"dataset": name.File(),
			"error":   err.Error(),
		})
		doc = fallback()
		doc.Normalize()
		return doc, 0, false
	}
	doc.Normalize()
	s.logger.Debug(logModule, "Dataset loaded", map[string]interface{}{"dataset": name.File()})
	return doc, digest, true
}

func (s *Store) fetchDocument(ctx context.Context, name DatasetName, dst interface{}) (uint64, error) {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	raw, err := s.fetcher.Fetch(ctx, name.File())
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", name.File(), err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return 0, fmt.Errorf("decode %s: %w", name.File(), err)
	}
	return xxhash.Sum64(raw), nil
}

// fingerprint identifies a snapshot by the bytes it was built from, so two
// processes that loaded the same documents agree on it.
func fingerprint(digests [3]uint64) string {
	var buf [24]byte
	for i, d := range digests {
		binary.BigEndian.PutUint64(buf[i*8:], d)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(buf[:]))
}

func (s *Store) markReady(snap *snapshot) {
	s.mu.Lock()
	s.snap.Store(snap)
	close(s.ready)
	callbacks := s.callbacks
	s.callbacks = nil
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// IsReady reports whether LoadAll has finished.
func (s *Store) IsReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Ready is closed once the store is ready.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

func (s *Store) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnReady registers fn to run once the store is ready. If it already is, fn
// runs immediately on the calling goroutine.
func (s *Store) OnReady(fn func()) {
	s.mu.Lock()
	if s.IsReady() {
		s.mu.Unlock()
		fn()
		return
	}
	s.callbacks = append(s.callbacks, fn)
	s.mu.Unlock()
}

// Status is the readiness and health summary of the store.
type Status struct {
	Ready    bool          `json:"ready"`
	Degraded []DatasetName `json:"degraded"`
	Warnings []string      `json:"warnings"`
	LoadedAt *time.Time    `json:"loaded_at,omitempty"`
}

func (s *Store) Status() Status {
	snap := s.snap.Load()
	status := Status{
		Ready:    s.IsReady(),
		Degraded: slices.Clone(snap.degraded),
		Warnings: slices.Clone(snap.warnings),
	}
	if status.Ready {
		loadedAt := snap.loadedAt
		status.LoadedAt = &loadedAt
	}
	return status
}

// Fingerprint identifies the loaded content. It is empty until the store is
// ready and changes whenever any dataset's bytes change.
func (s *Store) Fingerprint() string {
	return s.snap.Load().fingerprint
}

// Degraded lists the datasets that fell back to their empty default.
func (s *Store) Degraded() []DatasetName {
	return slices.Clone(s.snap.Load().degraded)
}

// Warnings lists malformed entries found while loading.
func (s *Store) Warnings() []string {
	return slices.Clone(s.snap.Load().warnings)
}

// Accessors below return copies, so callers may modify what they get
// without touching the loaded datasets.

func (s *Store) GetAllStreams() []entity.Stream {
	return entity.CloneStreams(s.snap.Load().career.Streams)
}

// GetStreamCatalog returns the streams of streams.json in document order.
func (s *Store) GetStreamCatalog() []entity.Stream {
	return entity.CloneStreams(s.snap.Load().streams.Values())
}

// GetStream prefers the career.json representation and falls back to
// streams.json. The two are never merged.
func (s *Store) GetStream(id string) (*entity.Stream, bool) {
	snap := s.snap.Load()
	for i := range snap.career.Streams {
		if snap.career.Streams[i].Id == id {
			stream := snap.career.Streams[i].Clone()
			return &stream, true
		}
	}
	if stream, ok := snap.streams.Streams[id]; ok {
		stream = stream.Clone()
		return &stream, true
	}
	return nil, false
}

func (s *Store) GetExamCategories() []entity.ExamCategory {
	return entity.CloneExamCategories(s.snap.Load().exams.ExamCategories)
}

func (s *Store) GetExamsByCategory(category string) []entity.Exam {
	for _, c := range s.snap.Load().exams.ExamCategories {
		if strings.EqualFold(c.Category, category) {
			return slices.Clone(c.Exams)
		}
	}
	return []entity.Exam{}
}

func (s *Store) GetExamsByLevel(level string) []entity.Exam {
	if exams, ok := s.snap.Load().exams.ExamLevels[level]; ok && exams != nil {
		return slices.Clone(exams)
	}
	return []entity.Exam{}
}

func (s *Store) GetPreparationResources() map[string][]entity.PreparationResource {
	resources := s.snap.Load().exams.PreparationResources
	out := make(map[string][]entity.PreparationResource, len(resources))
	for k, v := range resources {
		out[k] = slices.Clone(v)
	}
	return out
}

func (s *Store) GetCareers() []entity.Career {
	return slices.Clone(s.snap.Load().career.Careers)
}
