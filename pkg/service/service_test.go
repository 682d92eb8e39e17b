package service_test

import (
	"context"
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/meshmodel/pkg/service"
)

type testService struct {
	fail    error
	started bool
	done    service.Trigger
}

func (s *testService) Start(ctx context.Context) (service.Syncher, service.Syncher, error) {
	if s.fail != nil {
		return nil, nil, s.fail
	}
	s.started = true
	s.done = service.SyncTrigger()
	ready := service.SyncTrigger()
	go func() {
		ready.Trigger()
		<-ctx.Done()
		s.done.Trigger()
	}()
	return ready, s.done, nil
}

func (s *testService) Wait() error {
	return s.done.Wait()
}

var _ = Describe("service group", func() {
	It("starts and stops services", func() {
		reg := service.New(context.Background())
		a := &testService{}
		b := &testService{}
		Expect(reg.Add(a)).To(Succeed())
		Expect(a.started).To(BeFalse())
		Expect(reg.Start()).To(Succeed())
		Expect(a.started).To(BeTrue())

		Expect(reg.Add(b)).To(Succeed())
		Expect(b.started).To(BeTrue())

		reg.Stop()
		Expect(reg.Wait()).To(Succeed())
	})

	It("cancels the group if a service cannot be started", func() {
		reg := service.New(context.Background())
		a := &testService{}
		Expect(reg.Start(a)).To(Succeed())
		err := reg.Start(&testService{fail: fmt.Errorf("no port")})
		Expect(err).To(MatchError(ContainSubstring("no port")))
		Expect(reg.Wait()).To(Succeed())
	})

	It("collects service errors", func() {
		wg := &sync.WaitGroup{}
		s := service.Sync(wg)
		wg.Add(1)
		s.SetError(fmt.Errorf("broken"))
		wg.Done()
		Expect(s.Wait()).To(MatchError("broken"))
	})
})
