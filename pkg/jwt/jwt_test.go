package jwt_test

import (
	"time"

	"roster/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		now     time.Time
	)

	BeforeEach(func() {
		now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		jwt.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { jwt.TimeNow = time.Now })

		service = jwt.NewJWTService([]byte("0123456789abcdef"))
	})

	Describe("Issue and SessionID", func() {
		var (
			token string
			err   error
		)

		BeforeEach(func() {
			token, err = service.Issue(jwt.TokenInfo{SessionID: "abc", Expiration: time.Hour})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should round trip the session id", func() {
			sid, err := service.SessionID(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(sid).To(Equal("abc"))
		})

		It("should sign with HS512", func() {
			parsed, _, err := new(gojwt.Parser).ParseUnverified(token, gojwt.MapClaims{})
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.Method.Alg()).To(Equal("HS512"))
		})

		When("the token has expired", func() {
			BeforeEach(func() {
				now = now.Add(2 * time.Hour)
			})

			It("should report expiry", func() {
				_, err := service.SessionID(token)
				Expect(err).To(MatchError(jwt.ErrTokenExpired))
			})
		})

		When("a different secret is used", func() {
			It("should reject the token", func() {
				other := jwt.NewJWTService([]byte("fedcba9876543210"))
				_, err := other.SessionID(token)
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})

		When("the token is tampered with", func() {
			It("should reject it", func() {
				_, err := service.SessionID(token + "x")
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})
	})

	Describe("SessionID", func() {
		When("the sid claim is missing", func() {
			It("should return an error", func() {
				token := gojwt.NewWithClaims(gojwt.SigningMethodHS512, gojwt.MapClaims{
					"exp": now.Add(time.Hour).Unix(),
				})
				signed, err := service.Sign(token)
				Expect(err).NotTo(HaveOccurred())

				_, err = service.SessionID(signed)
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})

		When("the token is garbage", func() {
			It("should return an error", func() {
				_, err := service.SessionID("not-a-token")
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})
	})
})
