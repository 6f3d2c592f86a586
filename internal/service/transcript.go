package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"warehouseapi/internal/storage"
)

var chunkStartRe = regexp.MustCompile(`chunk_start-(\d+)`)

// ParseBlobURL splits https://<host>/<container>/<path> into the container and
// the folder prefix holding the transcripts. A trailing .json file name is
// dropped; a non-empty prefix always ends in "/".
func ParseBlobURL(raw string) (container, prefix string, err error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedBlobURL, raw)
	}
	segs := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	if len(segs) == 0 || segs[0] == "" {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedBlobURL, raw)
	}
	container, rest := segs[0], segs[1:]
	if n := len(rest); n > 0 && strings.HasSuffix(rest[n-1], ".json") {
		rest = rest[:n-1]
	}
	prefix = strings.Trim(strings.Join(rest, "/"), "/")
	if prefix != "" {
		prefix += "/"
	}
	return container, prefix, nil
}

// isTranscriptFile reports whether an object key names a transcript segment.
func isTranscriptFile(key string) bool {
	return strings.HasSuffix(key, ".json") && strings.Contains(key, "chunk_start")
}

// chunkStart is the segment offset encoded in a transcript file name.
// Names without one sort last.
func chunkStart(key string) int64 {
	m := chunkStartRe.FindStringSubmatch(key)
	if m == nil {
		return math.MaxInt64
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return n
}

// listTranscripts returns the transcript file keys under prefix in segment order.
func listTranscripts(ctx context.Context, store storage.Storage, container, prefix string) ([]string, error) {
	objs, err := store.List(ctx, container, prefix)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(objs))
	for _, o := range objs {
		if isTranscriptFile(o.Key) {
			keys = append(keys, o.Key)
		}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return chunkStart(keys[i]) < chunkStart(keys[j])
	})
	return keys, nil
}

// mergeTranscripts concatenates the JSON documents in keys. Arrays are
// flattened, other values appended. Unreadable or invalid files are skipped.
func mergeTranscripts(ctx context.Context, store storage.Storage, container string, keys []string, log zerolog.Logger) []any {
	results := make([]any, 0)
	for _, key := range keys {
		b, err := readObject(ctx, store, container, key)
		if err != nil {
			log.Error().Err(err).Str("blob", key).Msg("read transcript failed")
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		var doc any
		if err := dec.Decode(&doc); err != nil {
			log.Warn().Err(err).Str("blob", key).Msg("skipping invalid transcript json")
			continue
		}
		if _, err := dec.Token(); err != io.EOF {
			log.Warn().Str("blob", key).Msg("skipping transcript with trailing data")
			continue
		}
		if arr, ok := doc.([]any); ok {
			results = append(results, arr...)
		} else {
			results = append(results, doc)
		}
	}
	return results
}

func readObject(ctx context.Context, store storage.Storage, container, key string) ([]byte, error) {
	rc, _, err := store.Get(ctx, container, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// BuildVideoContext renders every object of the merged transcript as banner
// separated key/value sections, keys in sorted order.
func BuildVideoContext(results []any) string {
	var b strings.Builder
	for _, item := range results {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString("**************")
			b.WriteString(k)
			b.WriteString("**************\n")
			b.WriteString(contextValue(obj[k]))
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func contextValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
