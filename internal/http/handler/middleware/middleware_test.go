package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"roster/internal/http/handler/middleware"
	"roster/internal/http/handler/middleware/fake"
	"roster/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		w       *httptest.ResponseRecorder
		req     *http.Request
		fakeErr error
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/students", nil)
		fakeErr = errors.New("fake error")
	})

	Describe("Chain", func() {
		It("should apply the first middleware outermost", func() {
			var order []string
			mw := func(name string) middleware.Middleware {
				return func(next http.Handler) http.Handler {
					return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						order = append(order, name)
						next.ServeHTTP(w, r)
					})
				}
			}

			h := middleware.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				order = append(order, "handler")
			}), mw("a"), mw("b"))
			h.ServeHTTP(w, req)

			Expect(order).To(Equal([]string{"a", "b", "handler"}))
		})
	})

	Describe("RequestID", func() {
		var seen string

		JustBeforeEach(func() {
			h := middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = middleware.RequestIDFromContext(r.Context())
			}))
			h.ServeHTTP(w, req)
		})

		When("the caller sends none", func() {
			It("should generate a ULID", func() {
				Expect(seen).To(HaveLen(26))
				Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
			})
		})

		When("the caller sends one", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.RequestIDHeader, "abc-123")
			})

			It("should reuse it", func() {
				Expect(seen).To(Equal("abc-123"))
			})
		})
	})

	Describe("Logging", func() {
		It("should log the request once with its status", func() {
			core, logs := observer.New(zapcore.InfoLevel)
			h := middleware.NewLoggingMiddleware(zap.New(core).Sugar()).Logging(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				}))
			h.ServeHTTP(w, req)

			Expect(logs.Len()).To(Equal(1))
			entry := logs.All()[0]
			Expect(entry.Level).To(Equal(zapcore.WarnLevel))
			Expect(entry.ContextMap()).To(HaveKeyWithValue("status", int64(http.StatusNotFound)))
			Expect(entry.ContextMap()).To(HaveKeyWithValue("path", "/students"))
		})
	})

	Describe("Recover", func() {
		It("should turn a panic into a 500", func() {
			h := middleware.NewRecoverMiddleware(zap.NewNop().Sugar()).Recover(
				http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
					panic("boom")
				}))

			Expect(func() { h.ServeHTTP(w, req) }).NotTo(Panic())
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("Metrics", func() {
		It("should count requests by matched route", func() {
			metrics := middleware.NewMetricsMiddleware("roster")
			mux := http.NewServeMux()
			mux.HandleFunc("GET /edit/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			h := metrics.Metrics(mux)
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/edit/1", nil))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/edit/2", nil))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

			rec := httptest.NewRecorder()
			metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			body, err := io.ReadAll(rec.Body)
			Expect(err).NotTo(HaveOccurred())

			Expect(string(body)).To(ContainSubstring(`roster_http_requests_total{code="204",method="GET",route="GET /edit/{id}"} 2`))
			Expect(string(body)).To(ContainSubstring(`roster_http_requests_total{code="404",method="GET",route="unmatched"} 1`))
		})
	})

	Describe("SessionGuard", func() {
		var (
			checker *fake.SessionChecker
			called  bool
		)

		BeforeEach(func() {
			checker = new(fake.SessionChecker)
			called = false
		})

		JustBeforeEach(func() {
			guard := middleware.NewSessionGuard(zap.NewNop().Sugar(), checker)
			guard.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})).ServeHTTP(w, req)
		})

		When("the session is authenticated", func() {
			BeforeEach(func() {
				checker.IsAuthenticatedReturns(true)
			})

			It("should call the handler", func() {
				Expect(called).To(BeTrue())
				Expect(checker.FlashCallCount()).To(Equal(0))
			})
		})

		When("there is no session", func() {
			It("should flash a warning and redirect to login", func() {
				Expect(called).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/login"))

				Expect(checker.FlashCallCount()).To(Equal(1))
				_, _, category, message := checker.FlashArgsForCall(0)
				Expect(category).To(Equal(session.FlashWarning))
				Expect(message).To(Equal("Please log in to access this page."))
			})
		})

		When("the flash cannot be stored", func() {
			BeforeEach(func() {
				checker.FlashReturns(fakeErr)
			})

			It("should still redirect", func() {
				Expect(called).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusFound))
			})
		})
	})
})
