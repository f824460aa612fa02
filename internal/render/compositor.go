package render

import (
	"sync"

	"spheremap-tool/internal/cubemap"
	"spheremap-tool/internal/pixmap"
	"spheremap-tool/internal/projection"
)

// Render composites the spheremap: every pixel of a size×size output image
// is evaluated through the projection sampler. Rows are distributed across
// workers goroutines; each row is written only by the worker that took it
// and the cubemap is read-only, so no locking is needed. The result is
// identical for any worker count.
func Render(cm *cubemap.Cubemap, size int, pattern projection.Pattern, workers int) *pixmap.Pixmap {
	out := pixmap.New(size, size)
	sampler := projection.NewSampler(cm, pattern)

	if workers <= 1 {
		for y := 0; y < size; y++ {
			renderRow(sampler, out, y, size)
		}
		return out
	}

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(sampler, out, y, size)
			}
		}()
	}

	for y := 0; y < size; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return out
}

func renderRow(sampler *projection.Sampler, out *pixmap.Pixmap, y, size int) {
	for x := 0; x < size; x++ {
		out.Set(x, y, sampler.SamplePixel(x, y, size))
	}
}
