package trig_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTrig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "trig property suite")
}
