package eijiro

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported corpus encodings. The EIJIRO corpus is distributed in
// CP932; converted copies are usually UTF-8 or UTF-16LE with a BOM.
const (
	EncodingUTF8     = "utf8"
	EncodingShiftJIS = "sjis"
	EncodingUTF16LE  = "utf16le"
)

// Dict is a ready-to-query dictionary: the immutable key/field tables
// plus the lookup index built over them. It is constructed once at
// startup and then shared read-only by any number of concurrent
// lookups.
type Dict struct {
	dict  *Dictionary
	index *Index
}

// NewDict loads the dictionary cache or, failing that, parses the
// corpus and builds the dictionary from scratch, then writes the
// cache best-effort. A cache failure is never fatal: the load path
// always falls back to the corpus, and a failed save only costs the
// next run a reparse.
func NewDict(config *BaseConfig, logger *zap.Logger) (*Dict, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	d, err := ReadCache(config.Cache)
	if err != nil {
		logger.Info("cache unavailable, parsing the corpus",
			zap.String("cache", config.Cache),
			zap.String("corpus", config.Corpus),
			zap.Error(err))
		d, err = buildFromCorpus(config, logger)
		if err != nil {
			return nil, err
		}
		if werr := WriteCache(config.Cache, d); werr != nil {
			logger.Warn("fail to write the dictionary cache",
				zap.String("cache", config.Cache),
				zap.Error(werr))
		}
	} else {
		logger.Info("loaded the dictionary cache",
			zap.String("cache", config.Cache),
			zap.Int("keys", d.Size()))
	}

	ix, err := BuildIndex(d)
	if err != nil {
		return nil, fmt.Errorf("fail to build the lookup index: %w", err)
	}
	return &Dict{dict: d, index: ix}, nil
}

func buildFromCorpus(config *BaseConfig, logger *zap.Logger) (*Dictionary, error) {
	fd, err := os.OpenFile(config.Corpus, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	r, err := DecodeReader(fd, config.Encoding)
	if err != nil {
		return nil, err
	}

	entries, perrs, err := ParseCorpus(r, config.Strict)
	if err != nil {
		return nil, fmt.Errorf("fail to parse %s: %w", config.Corpus, err)
	}
	if len(perrs) > 0 {
		logger.Warn("skipped malformed corpus lines",
			zap.Int("count", len(perrs)),
			zap.String("first", perrs[0].Error()))
	}
	logger.Info("parsed the corpus",
		zap.String("corpus", config.Corpus),
		zap.Int("entries", len(entries)))

	return BuildDictionary(entries)
}

// DecodeReader wraps a raw corpus stream with the decoder for the
// configured encoding.
func DecodeReader(r io.Reader, enc string) (io.Reader, error) {
	switch enc {
	case "", EncodingUTF8:
		return r, nil
	case EncodingShiftJIS:
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder()), nil
	case EncodingUTF16LE:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unknown corpus encoding: %s", enc)
	}
}

// Lookup is the query entry point for frontends.
func (dc *Dict) Lookup(query string, maxDist uint32) ([]Match, error) {
	return Lookup(dc.dict, dc.index, query, maxDist)
}

// Dictionary returns the shared read-only dictionary.
func (dc *Dict) Dictionary() *Dictionary {
	return dc.dict
}

// Index returns the shared read-only lookup index.
func (dc *Dict) Index() *Index {
	return dc.index
}
