package versions

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/zerr"
)

// cacheKey addresses one version listing.
type cacheKey struct {
	repositoryID string
	module       domain.ModuleIdentifier
}

// encodeKey writes [repositoryId][group][name].
func encodeKey(k cacheKey) []byte {
	var buf bytes.Buffer
	writeString(&buf, k.repositoryID)
	writeString(&buf, k.module.Group.String())
	writeString(&buf, k.module.Name.String())
	return buf.Bytes()
}

// decodeKey reads a key written by encodeKey and returns the remaining input.
func decodeKey(r *bytes.Reader) (cacheKey, error) {
	repo, err := readString(r)
	if err != nil {
		return cacheKey{}, err
	}
	group, err := readString(r)
	if err != nil {
		return cacheKey{}, err
	}
	name, err := readString(r)
	if err != nil {
		return cacheKey{}, err
	}
	return cacheKey{repositoryID: repo, module: domain.NewModuleIdentifier(group, name)}, nil
}

// encodeEntry writes [count int32][count x version][createdAt int64].
func encodeEntry(e domain.ModuleVersionsCacheEntry) []byte {
	var buf bytes.Buffer
	writeInt32(&buf, int32(len(e.Versions))) //nolint:gosec // listings never approach 2^31 versions
	for _, v := range e.Versions {
		writeString(&buf, v)
	}
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(e.CreatedAt)) //nolint:gosec // bit pattern round-trips
	buf.Write(ts[:])
	return buf.Bytes()
}

func decodeEntry(r *bytes.Reader) (domain.ModuleVersionsCacheEntry, error) {
	count, err := readInt32(r)
	if err != nil {
		return domain.ModuleVersionsCacheEntry{}, err
	}
	if count < 0 || int64(count) > int64(r.Len())/4 {
		return domain.ModuleVersionsCacheEntry{}, zerr.With(errCorruptEntry, "count", count)
	}
	versions := make([]string, 0, count)
	for range count {
		v, err := readString(r)
		if err != nil {
			return domain.ModuleVersionsCacheEntry{}, err
		}
		versions = append(versions, v)
	}
	var ts [8]byte
	if _, err := io.ReadFull(r, ts[:]); err != nil {
		return domain.ModuleVersionsCacheEntry{}, zerr.Wrap(err, errCorruptEntry.Error())
	}
	return domain.ModuleVersionsCacheEntry{
		Versions:  versions,
		CreatedAt: int64(binary.BigEndian.Uint64(ts[:])), //nolint:gosec // bit pattern round-trips
	}, nil
}

// encodeRecord is the on-disk file content: the key followed by the entry.
// Storing the key lets a reader reject a file whose name hash collided.
func encodeRecord(k cacheKey, e domain.ModuleVersionsCacheEntry) []byte {
	return append(encodeKey(k), encodeEntry(e)...)
}

func decodeRecord(data []byte) (cacheKey, domain.ModuleVersionsCacheEntry, error) {
	r := bytes.NewReader(data)
	k, err := decodeKey(r)
	if err != nil {
		return cacheKey{}, domain.ModuleVersionsCacheEntry{}, err
	}
	e, err := decodeEntry(r)
	if err != nil {
		return cacheKey{}, domain.ModuleVersionsCacheEntry{}, err
	}
	if r.Len() != 0 {
		return cacheKey{}, domain.ModuleVersionsCacheEntry{}, zerr.With(errCorruptEntry, "trailing_bytes", r.Len())
	}
	return k, e, nil
}

func writeString(buf *bytes.Buffer, s string) {
	writeInt32(buf, int32(len(s))) //nolint:gosec // coordinates are short
	buf.WriteString(s)
}

func writeInt32(buf *bytes.Buffer, n int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(n)) //nolint:gosec // bit pattern round-trips
	buf.Write(b[:])
}

func readInt32(r *bytes.Reader) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, zerr.Wrap(err, errCorruptEntry.Error())
	}
	u := binary.BigEndian.Uint32(b[:])
	if u > math.MaxInt32 {
		return 0, zerr.With(errCorruptEntry, "length", u)
	}
	return int32(u), nil
}

func readString(r *bytes.Reader) (string, error) {
	n, err := readInt32(r)
	if err != nil {
		return "", err
	}
	if int(n) > r.Len() {
		return "", zerr.With(errCorruptEntry, "length", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", zerr.Wrap(err, errCorruptEntry.Error())
	}
	return string(b), nil
}

var errCorruptEntry = zerr.New("corrupt module versions cache entry")
