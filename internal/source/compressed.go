package source

import (
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zstd"
)

// Compressed streams cannot seek, so they are inflated up front.

func openZstd(path string) (*StreamSource, error) {
	f, _, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, sourceError(path, err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, sourceError(path, err)
	}
	return NewMemorySource(path, data), nil
}

func openBzip2(path string) (*StreamSource, error) {
	f, _, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, sourceError(path, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, sourceError(path, err)
	}
	return NewMemorySource(path, data), nil
}
