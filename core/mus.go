package core

import (
	"maps"
	"slices"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// EmbeddingRecordMUS serializes EmbeddingRecord values for the embedding
// store. Metadata keys are written in sorted order so identical records
// produce identical bytes.
var EmbeddingRecordMUS = embeddingRecordMUS{}

type embeddingRecordMUS struct{}

func (embeddingRecordMUS) Marshal(r EmbeddingRecord, bs []byte) (n int) {
	n = ord.String.Marshal(r.JobID, bs)
	n += ord.String.Marshal(r.Document, bs[n:])
	n += varint.Int.Marshal(len(r.Vector), bs[n:])
	for _, v := range r.Vector {
		n += raw.Float32.Marshal(v, bs[n:])
	}
	n += varint.Int.Marshal(len(r.Metadata), bs[n:])
	for _, k := range slices.Sorted(maps.Keys(r.Metadata)) {
		n += ord.String.Marshal(k, bs[n:])
		n += ord.String.Marshal(r.Metadata[k], bs[n:])
	}
	n += varint.Int64.Marshal(r.IngestedAt.UnixMicro(), bs[n:])
	return
}

func (embeddingRecordMUS) Unmarshal(bs []byte) (r EmbeddingRecord, n int, err error) {
	var n1 int
	r.JobID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	r.Document, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var vectorLen int
	vectorLen, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if vectorLen > 0 {
		r.Vector = make([]float32, vectorLen)
		for i := 0; i < vectorLen; i++ {
			r.Vector[i], n1, err = raw.Float32.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	var metaLen int
	metaLen, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if metaLen > 0 {
		r.Metadata = make(map[string]string, metaLen)
		for i := 0; i < metaLen; i++ {
			var k, v string
			k, n1, err = ord.String.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
			v, n1, err = ord.String.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
			r.Metadata[k] = v
		}
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.IngestedAt = time.UnixMicro(micros).UTC()
	return
}

func (embeddingRecordMUS) Size(r EmbeddingRecord) (n int) {
	n = ord.String.Size(r.JobID)
	n += ord.String.Size(r.Document)
	n += varint.Int.Size(len(r.Vector))
	for _, v := range r.Vector {
		n += raw.Float32.Size(v)
	}
	n += varint.Int.Size(len(r.Metadata))
	for k, v := range r.Metadata {
		n += ord.String.Size(k)
		n += ord.String.Size(v)
	}
	n += varint.Int64.Size(r.IngestedAt.UnixMicro())
	return
}
