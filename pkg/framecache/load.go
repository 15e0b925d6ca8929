package framecache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"
	"github.com/opencontainers/go-digest"

	"github.com/bft-labs/framecache/internal/domain"
	"github.com/bft-labs/framecache/internal/registry"
	"github.com/bft-labs/framecache/pkg/atlas"
	"github.com/bft-labs/framecache/pkg/log"
)

// LoadResult describes one load call.
type LoadResult struct {
	// ID identifies this load in logs and events.
	ID uuid.UUID

	// Source is the source ID the frames are registered under.
	Source string

	// Texture is the image the frames were bound to. Nil when skipped.
	Texture *Texture

	// Added counts frames inserted or replaced.
	Added int

	// Aliases counts aliases registered.
	Aliases int

	// Skipped is true when the source was already loaded and nothing ran.
	Skipped bool

	// Warnings lists records and aliases that were rejected.
	Warnings []Warning

	Duration time.Duration
}

// ContentID returns the source ID for in-memory descriptor content.
func ContentID(content []byte) string {
	return digest.FromBytes(content).String()
}

// LoadFile loads the descriptor at path. The texture is the one named in
// the descriptor's metadata, or else the descriptor path with its
// extension replaced by Config.ImageExtension.
//
// Loading a source twice is a no-op that returns a skipped result. A
// descriptor that cannot be parsed or an image that cannot be resolved
// fails the call and leaves the cache unchanged. Bad records are skipped
// and reported in LoadResult.Warnings.
func (c *Cache) LoadFile(ctx context.Context, path string) (LoadResult, error) {
	return c.loadFile(ctx, binding{path: c.SourceID(path)})
}

// LoadFileWithTexture loads the descriptor at path bound to the image at
// texturePath.
func (c *Cache) LoadFileWithTexture(ctx context.Context, path, texturePath string) (LoadResult, error) {
	return c.loadFile(ctx, binding{path: c.SourceID(path), texturePath: c.SourceID(texturePath)})
}

// LoadFileWithImage loads the descriptor at path bound to tex.
func (c *Cache) LoadFileWithImage(ctx context.Context, path string, tex *Texture) (LoadResult, error) {
	if tex == nil {
		return LoadResult{}, domain.NewImageLoadError(path, fmt.Errorf("nil texture"))
	}
	return c.loadFile(ctx, binding{path: c.SourceID(path), texture: tex})
}

// LoadContent loads in-memory descriptor content bound to tex. The source
// ID is the content digest, see ContentID.
func (c *Cache) LoadContent(ctx context.Context, content []byte, tex *Texture) (LoadResult, error) {
	source := ContentID(content)
	if tex == nil {
		return LoadResult{}, domain.NewImageLoadError(source, fmt.Errorf("nil texture"))
	}
	if c.registry.IsLoaded(source) {
		return c.skipped(source), nil
	}
	start := time.Now()
	doc, err := c.loader.Parse(ctx, content, atlas.KindUnknown)
	if err != nil {
		c.logger.Error("failed to parse descriptor", log.Source(source), log.Err(err))
		return LoadResult{}, err
	}
	return c.apply(source, doc, tex, start), nil
}

// LoadDocument registers an already parsed document under sourceID.
func (c *Cache) LoadDocument(ctx context.Context, sourceID string, doc *atlas.Document, tex *Texture) (LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return LoadResult{}, err
	}
	if doc == nil {
		return LoadResult{}, domain.NewMalformedDocument(sourceID, fmt.Errorf("nil document"))
	}
	if tex == nil {
		return LoadResult{}, domain.NewImageLoadError(sourceID, fmt.Errorf("nil texture"))
	}
	if c.registry.IsLoaded(sourceID) {
		return c.skipped(sourceID), nil
	}
	return c.apply(sourceID, doc, tex, time.Now()), nil
}

func (c *Cache) loadFile(ctx context.Context, b binding) (LoadResult, error) {
	source := b.path
	if c.registry.IsLoaded(source) {
		return c.skipped(source), nil
	}

	start := time.Now()
	doc, tex, err := c.read(ctx, b)
	if err != nil {
		return LoadResult{}, err
	}
	res := c.apply(source, doc, tex, start)
	if !res.Skipped {
		c.bind(source, b)
	}
	return res, nil
}

// read parses the descriptor and resolves its texture without touching
// the registry.
func (c *Cache) read(ctx context.Context, b binding) (*atlas.Document, *Texture, error) {
	doc, err := c.loader.LoadFile(ctx, b.path)
	if err != nil {
		c.logger.Error("failed to load descriptor", log.Source(b.path), log.Err(err))
		return nil, nil, err
	}

	tex := b.texture
	if tex == nil {
		texPath := b.texturePath
		if texPath == "" {
			texPath = atlas.TexturePath(b.path, doc, c.config.ImageExtension)
		}
		tex, err = c.images.Resolve(ctx, texPath)
		if err != nil {
			if !domain.IsImageLoadError(err) && ctx.Err() == nil {
				err = domain.NewImageLoadError(texPath, err)
			}
			c.logger.Error("failed to load texture",
				log.Source(b.path),
				log.String("texture", texPath),
				log.Err(err))
			return nil, nil, err
		}
	}
	return doc, tex, nil
}

// buildBatch turns document records into frames. Records that fail
// conversion become warnings.
func buildBatch(doc *atlas.Document, tex *Texture) (registry.Batch, []Warning) {
	batch := registry.Batch{
		Entries: make([]registry.Entry, 0, len(doc.Records)),
		Aliases: doc.Aliases,
	}
	warnings := append([]Warning(nil), doc.Warnings...)
	for _, rec := range doc.Records {
		spec, err := rec.Spec(doc.Format)
		if err != nil {
			warnings = append(warnings, Warning{Name: rec.Name, Err: err})
			continue
		}
		frame, err := domain.NewFrame(tex, spec)
		if err != nil {
			warnings = append(warnings, Warning{Name: rec.Name, Err: err})
			continue
		}
		batch.Entries = append(batch.Entries, registry.Entry{Name: rec.Name, Frame: frame})
	}
	return batch, warnings
}

func aliasWarnings(rejected []string) []Warning {
	out := make([]Warning, 0, len(rejected))
	for _, alias := range rejected {
		out = append(out, Warning{
			Name: alias,
			Err:  domain.NewInvalidRecord(alias, "alias target missing or name taken by a frame"),
		})
	}
	return out
}

func (c *Cache) apply(source string, doc *atlas.Document, tex *Texture, start time.Time) LoadResult {
	batch, warnings := buildBatch(doc, tex)

	applied, ok := c.registry.Apply(source, batch)
	if !ok {
		return c.skipped(source)
	}
	warnings = append(warnings, aliasWarnings(applied.RejectedAliases)...)

	res := LoadResult{
		ID:       uuid.New(),
		Source:   source,
		Texture:  tex,
		Added:    applied.Added,
		Aliases:  applied.Aliases,
		Warnings: warnings,
		Duration: time.Since(start),
	}
	c.logResult("frames loaded", res)
	c.events.load(res)
	return res
}

func (c *Cache) skipped(source string) LoadResult {
	res := LoadResult{ID: uuid.New(), Source: source, Skipped: true}
	c.logger.Debug("source already loaded", log.Source(source))
	c.events.load(res)
	return res
}

func (c *Cache) logResult(msg string, res LoadResult) {
	for _, w := range res.Warnings {
		c.logger.Warn("skipped invalid entry",
			log.Source(res.Source),
			log.FrameName(w.Name),
			log.String("code", string(errors.GetCode(w.Err))),
			log.Err(w.Err))
	}
	c.logger.Info(msg,
		log.Source(res.Source),
		log.String("load_id", res.ID.String()),
		log.Int("added", res.Added),
		log.Int("aliases", res.Aliases),
		log.Int("warnings", len(res.Warnings)),
		log.Duration("took", res.Duration))
}

// Reload re-reads a file source that is currently loaded and swaps its
// frames in one step. Names the new version no longer contains are
// removed. The texture binding used by the original load is kept. On
// error the previous frames stay in place.
func (c *Cache) Reload(ctx context.Context, sourceID string) (LoadResult, error) {
	b, ok := c.binding(sourceID)
	if !ok || !c.registry.IsLoaded(sourceID) {
		return LoadResult{}, errors.WithContext(
			errors.New(errors.CodeNotFound, "source is not a loaded descriptor file"),
			"source", sourceID)
	}

	start := time.Now()
	doc, tex, err := c.read(ctx, b)
	if err != nil {
		return LoadResult{}, err
	}
	batch, warnings := buildBatch(doc, tex)
	applied, dropped := c.registry.Replace(sourceID, batch)
	warnings = append(warnings, aliasWarnings(applied.RejectedAliases)...)

	res := LoadResult{
		ID:       uuid.New(),
		Source:   sourceID,
		Texture:  tex,
		Added:    applied.Added,
		Aliases:  applied.Aliases,
		Warnings: warnings,
		Duration: time.Since(start),
	}
	c.logResult("frames reloaded", res)
	c.evicted(EvictEvent{Reason: EvictReload, Source: sourceID, Names: dropped, Count: len(dropped)})
	c.events.load(res)
	return res, nil
}
