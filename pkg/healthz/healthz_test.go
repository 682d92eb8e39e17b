package healthz_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/meshmodel/pkg/healthz"
)

var _ = Describe("health checks", func() {
	AfterEach(func() {
		healthz.End("dispatcher")
		healthz.End("stalled")
	})

	It("reports started checks", func() {
		healthz.Start("dispatcher", time.Minute)
		healthz.Tick("dispatcher")
		ok, info := healthz.HealthInfo()
		Expect(ok).To(BeTrue())
		Expect(info).To(HavePrefix("dispatcher: ok"))
	})

	It("detects outdated checks", func() {
		healthz.Start("dispatcher", time.Minute)
		healthz.Start("stalled", time.Millisecond)
		Eventually(func() bool {
			ok, _ := healthz.HealthInfo()
			return ok
		}).Should(BeFalse())

		rec := httptest.NewRecorder()
		healthz.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).To(ContainSubstring("stalled: outdated"))
		Expect(rec.Body.String()).To(ContainSubstring("dispatcher: ok"))
	})

	It("ignores ticks of unknown checks", func() {
		healthz.Tick("unknown")
		ok, _ := healthz.HealthInfo()
		Expect(ok).To(BeTrue())
	})
})
