package eijiro

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/alpha-kai-net/eijiro-go/internal/mmap"
)

const (
	// CacheVersion identifies the current cache layout. A cache
	// written with a different constant is rebuilt from the corpus.
	CacheVersion = 0x65696a7240ab11e9

	DescriptionSize   = 256
	HeaderStorageSize = 8 + 8 + DescriptionSize
)

// ErrInvalidCache marks any unreadable or incompatible cache file.
// Callers fall back to a fresh parse and build.
var ErrInvalidCache = errors.New("invalid dictionary cache")

type CacheHeader struct {
	Version     uint64
	CreateTime  int64
	Description string
}

func NewCacheHeader(version uint64, createTime int64, description string) *CacheHeader {
	return &CacheHeader{
		Version:     version,
		CreateTime:  createTime,
		Description: description,
	}
}

func ParseCacheHeader(input []byte) *CacheHeader {
	if len(input) < HeaderStorageSize {
		return nil
	}
	version := binary.LittleEndian.Uint64(input)
	createTime := int64(binary.LittleEndian.Uint64(input[8:]))

	i := 16
	for ; i < HeaderStorageSize; i++ {
		if input[i] == 0 {
			break
		}
	}
	description := string(input[16:i])

	return &CacheHeader{
		Version:     version,
		CreateTime:  createTime,
		Description: description,
	}
}

func (ch *CacheHeader) ToBytes() ([]byte, error) {
	desc := []byte(ch.Description)
	if len(desc) > DescriptionSize {
		return nil, errors.New("description is too long")
	}

	buf := bytes.NewBuffer(make([]byte, 0, HeaderStorageSize))
	err := binary.Write(buf, binary.LittleEndian, uint64(ch.Version))
	if err != nil {
		return nil, err
	}
	err = binary.Write(buf, binary.LittleEndian, uint64(ch.CreateTime))
	if err != nil {
		return nil, err
	}
	_, err = buf.Write(desc)
	if err != nil {
		return nil, err
	}
	if len(desc) < DescriptionSize {
		padding := make([]byte, DescriptionSize-len(desc))
		_, err = buf.Write(padding)
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// cacheImage is the serialized form of a Dictionary: the two
// co-indexed tables, nothing else. The lookup index is rebuilt from
// the keys on load.
type cacheImage struct {
	Keys   []string   `cbor:"keys"`
	Groups [][]*Field `cbor:"groups"`
}

// WriteCache persists the dictionary as a header plus CBOR payload so
// later runs can skip parsing the corpus.
func WriteCache(filename string, d *Dictionary) error {
	header := NewCacheHeader(CacheVersion, time.Now().Unix(), "eijiro headword dictionary")
	hb, err := header.ToBytes()
	if err != nil {
		return err
	}
	payload, err := cbor.Marshal(cacheImage{Keys: d.keys, Groups: d.groups})
	if err != nil {
		return err
	}

	fd, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer fd.Close()

	w := bufio.NewWriter(fd)
	if _, err := w.Write(hb); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	return w.Flush()
}

// ReadCache loads a dictionary previously written by WriteCache. Any
// defect — missing file, truncation, version mismatch, undecodable
// payload, violated key invariants — is an error; no partially
// reconstructed dictionary is ever returned.
func ReadCache(filename string) (*Dictionary, error) {
	fd, err := os.OpenFile(filename, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	finfo, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	if finfo.Size() <= HeaderStorageSize {
		return nil, fmt.Errorf("%w: %s: truncated file", ErrInvalidCache, filename)
	}

	fmap, err := mmap.Mmap(fd, false, 0, finfo.Size())
	if err != nil {
		return nil, err
	}
	defer mmap.Munmap(fmap)

	header := ParseCacheHeader(fmap)
	if header == nil || header.Version != CacheVersion {
		return nil, fmt.Errorf("%w: %s: version mismatch", ErrInvalidCache, filename)
	}

	var img cacheImage
	if err := cbor.Unmarshal(fmap[HeaderStorageSize:], &img); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidCache, filename, err)
	}
	if len(img.Keys) == 0 || len(img.Keys) != len(img.Groups) {
		return nil, fmt.Errorf("%w: %s: table sizes differ", ErrInvalidCache, filename)
	}
	for i, group := range img.Groups {
		if len(group) == 0 {
			return nil, fmt.Errorf("%w: %s: empty field group", ErrInvalidCache, filename)
		}
		if i > 0 && img.Keys[i-1] >= img.Keys[i] {
			return nil, fmt.Errorf("%w: %s: keys out of order", ErrInvalidCache, filename)
		}
	}

	return &Dictionary{keys: img.Keys, groups: img.Groups}, nil
}
