package stealpool_test

import (
	"runtime"
	"sync/atomic"
	"testing"

	sp "github.com/Andrej220/go-utils/stealpool"
)

func BenchmarkGo(b *testing.B) {
	p := sp.New(sp.Options{Workers: runtime.GOMAXPROCS(0)})
	var sink atomic.Int64

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Go(func() { sink.Add(1) })
	}
	b.StopTimer()
	p.Close()
}

func BenchmarkGoParallel(b *testing.B) {
	p := sp.New(sp.Options{Workers: runtime.GOMAXPROCS(0)})
	var sink atomic.Int64

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = p.Go(func() { sink.Add(1) })
		}
	})
	b.StopTimer()
	p.Close()
}

func BenchmarkSubmitAndGet(b *testing.B) {
	p := sp.New(sp.Options{Workers: runtime.GOMAXPROCS(0)})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, err := sp.Submit(p, func() (int, error) { return i, nil })
		if err != nil {
			b.Fatalf("submit: %v", err)
		}
		if _, err := h.Get(); err != nil {
			b.Fatalf("get: %v", err)
		}
	}
	b.StopTimer()
	p.Close()
}
