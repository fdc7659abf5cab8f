package view

import "time"

// CarouselInterval is how often the home page carousel advances on its own.
const CarouselInterval = 3 * time.Second

// Wrap maps any index, negative included, onto 0..n-1. It returns 0 when n is 0.
func Wrap(index, n int) int {
	if n <= 0 {
		return 0
	}
	index %= n
	if index < 0 {
		index += n
	}
	return index
}

// Carousel is a circular cursor over Count slides.
type Carousel struct {
	Count int
	Index int
}

// NewCarousel starts at the first slide.
func NewCarousel(count int) Carousel {
	return Carousel{Count: count}
}

// At returns the cursor positioned on slide i.
func (c Carousel) At(i int) Carousel {
	c.Index = Wrap(i, c.Count)
	return c
}

// Next moves one slide forward, wrapping from the last slide to the first.
func (c Carousel) Next() Carousel {
	c.Index = Wrap(c.Index+1, c.Count)
	return c
}

// Prev moves one slide back, wrapping from the first slide to the last.
func (c Carousel) Prev() Carousel {
	c.Index = Wrap(c.Index-1, c.Count)
	return c
}
