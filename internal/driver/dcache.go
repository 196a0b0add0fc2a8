package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"tangent/internal/diag"
	"tangent/internal/source"
	"tangent/internal/token"
)

// Current schema version - increment when DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash, the cache key.
type Digest = [32]byte

// DiskCache stores token streams keyed by script content hash.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// TokenRec is one cached token. Trivia is not cached; a hit restores the
// stream without leading trivia, which the parser never reads anyway.
type TokenRec struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
}

// DiskPayload is the cached scan of one script.
type DiskPayload struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16
	Path   string
	Hash   Digest
	Tokens []TokenRec
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replacement
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A miss or a
// schema mismatch returns (false, nil).
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// TokenizeCached is Tokenize with a read-through disk cache. Only clean
// scans are cached; a script with scanner diagnostics is rescanned every
// time so the diagnostics reappear.
func TokenizeCached(cache *DiskCache, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	var payload DiskPayload
	hit, err := cache.Get(file.Hash, &payload)
	if err == nil && hit {
		return &TokenizeResult{
			FileSet: fs,
			File:    file,
			Tokens:  restoreTokens(file.ID, payload.Tokens),
			Bag:     diag.NewBag(maxDiagnostics),
		}, nil
	}

	result := tokenizeFile(fs, file, maxDiagnostics)
	if result.Bag.Len() == 0 {
		_ = cache.Put(file.Hash, &DiskPayload{
			Schema: diskCacheSchemaVersion,
			Path:   file.Path,
			Hash:   file.Hash,
			Tokens: cacheTokens(result.Tokens),
		})
	}
	return result, nil
}

func cacheTokens(tokens []token.Token) []TokenRec {
	recs := make([]TokenRec, len(tokens))
	for i, tok := range tokens {
		recs[i] = TokenRec{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  tok.Text,
		}
	}
	return recs
}

func restoreTokens(file source.FileID, recs []TokenRec) []token.Token {
	tokens := make([]token.Token, len(recs))
	for i, rec := range recs {
		tokens[i] = token.Token{
			Kind: token.Kind(rec.Kind),
			Span: source.Span{File: file, Start: rec.Start, End: rec.End},
			Text: rec.Text,
		}
	}
	return tokens
}
