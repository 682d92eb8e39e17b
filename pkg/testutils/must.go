package testutils

import (
	. "github.com/onsi/gomega"
)

func Must[T any](o T, err error) T {
	ExpectWithOffset(1, err).To(Succeed())
	return o
}

func Must2[T, U any](o T, u U, err error) (T, U) {
	ExpectWithOffset(1, err).To(Succeed())
	return o, u
}

func MustBeSuccessful(err error) {
	ExpectWithOffset(1, err).To(Succeed())
}

func MustFailWithMessage(err error, msg string) {
	ExpectWithOffset(1, err).To(MatchError(msg))
}
