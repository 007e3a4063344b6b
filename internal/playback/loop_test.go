package playback_test

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/nbodyviz/internal/playback"
	"github.com/san-kum/nbodyviz/internal/series"
)

func threeFrames() *series.Store {
	s, err := series.NewStore([]series.Frame{
		{{X: 0}},
		{{X: 1}},
		{{X: 2}},
	}, []float64{1})
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Player", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		DeferCleanup(cancel)
	})

	Context("when looping", func() {
		It("wraps to the first frame and stops after a cancel", func() {
			p := playback.New(threeFrames(), playback.WithInterval(time.Millisecond))

			var seen []int
			err := p.Run(ctx, func(i int, _ series.Frame) error {
				seen = append(seen, i)
				if len(seen) == 7 {
					cancel()
				}
				return nil
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(Equal([]int{0, 1, 2, 0, 1, 2, 0}))
			Expect(p.Frames()).To(BeEquivalentTo(7))
		})

		It("returns promptly when cancelled during the wait", func() {
			p := playback.New(threeFrames(), playback.WithInterval(time.Hour))

			done := make(chan error, 1)
			var calls atomic.Int32
			go func() {
				done <- p.Run(ctx, func(int, series.Frame) error {
					calls.Add(1)
					return nil
				})
			}()

			Eventually(calls.Load).Should(BeEquivalentTo(1))
			cancel()
			Eventually(done).WithTimeout(time.Second).Should(Receive(BeNil()))
			Consistently(calls.Load, 50*time.Millisecond).Should(BeEquivalentTo(1))
		})

		It("never delivers after a cancel issued before Run", func() {
			cancel()
			p := playback.New(threeFrames())
			calls := 0
			Expect(p.Run(ctx, func(int, series.Frame) error {
				calls++
				return nil
			})).To(Succeed())
			Expect(calls).To(BeZero())
		})
	})

	Context("with a slow callback", func() {
		It("never runs two callbacks at once", func() {
			p := playback.New(threeFrames(), playback.WithInterval(time.Millisecond))

			var inFlight, overlaps, calls atomic.Int32
			err := p.Run(ctx, func(int, series.Frame) error {
				if inFlight.Add(1) > 1 {
					overlaps.Add(1)
				}
				time.Sleep(5 * time.Millisecond)
				inFlight.Add(-1)
				if calls.Add(1) == 6 {
					cancel()
				}
				return nil
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(overlaps.Load()).To(BeZero())
			Expect(calls.Load()).To(BeEquivalentTo(6))
		})
	})
})
