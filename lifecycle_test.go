package sha256_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"git.gammaspectra.live/P2Pool/sha256"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
)

func assertNoError(t *testing.T, err error, msgAndArgs ...any) {
	if err != nil {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sunexpected err: %s", message, err)
	}
}

func assertErrorIs(t *testing.T, err, target error, msgAndArgs ...any) {
	if !errors.Is(err, target) {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sactual err: %v expected: %v", message, err, target)
	}
}

func assertEqual(t *testing.T, actual, expected any, msgAndArgs ...any) {
	if !reflect.DeepEqual(actual, expected) {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sactual: %v expected: %v", message, actual, expected)
	}
}

func TestContextLifecycle(t *testing.T) {
	spec.Run(t, "Context", func(t *testing.T, when spec.G, it spec.S) {
		when("never initialized", func() {
			var c sha256.Context

			it("rejects Update", func() {
				assertErrorIs(t, c.Update([]byte("abc")), sha256.ErrNotInitialized)
			})

			it("rejects Write", func() {
				n, err := c.Write([]byte("abc"))
				assertErrorIs(t, err, sha256.ErrNotInitialized)
				assertEqual(t, n, 0)
			})

			it("rejects Finalize", func() {
				out, err := c.Finalize()
				assertErrorIs(t, err, sha256.ErrNotInitialized)
				assertEqual(t, len(out), 0)
			})

			it("reports SHA-256 defaults", func() {
				assertEqual(t, c.Variant(), sha256.SHA256)
				assertEqual(t, c.Size(), sha256.Size)
			})
		})

		when("finalized", func() {
			var c *sha256.Context
			var first []byte

			it.Before(func() {
				c = sha256.NewContext(sha256.SHA256)
				assertNoError(t, c.Update([]byte("abc")))
				var err error
				first, err = c.Finalize()
				assertNoError(t, err)
			})

			it("produced the digest", func() {
				expected := sha256.Sum256([]byte("abc"))
				assertEqual(t, first, expected.Slice())
			})

			it("rejects Update", func() {
				assertErrorIs(t, c.Update([]byte("more")), sha256.ErrAlreadyFinalized)
			})

			it("rejects a second Finalize", func() {
				_, err := c.Finalize()
				assertErrorIs(t, err, sha256.ErrAlreadyFinalized)

				var out [sha256.Size]byte
				_, err = c.FinalizeTo(out[:])
				assertErrorIs(t, err, sha256.ErrAlreadyFinalized)
			})

			it("behaves like a fresh context after Init", func() {
				c.Init(sha256.SHA256)
				assertEqual(t, c.Len(), uint64(0))
				assertNoError(t, c.Update([]byte("abc")))
				again, err := c.Finalize()
				assertNoError(t, err)
				assertEqual(t, again, first)
			})

			it("switches variant on Init", func() {
				c.Init(sha256.SHA224)
				assertNoError(t, c.Update([]byte("abc")))
				out, err := c.Finalize()
				assertNoError(t, err)
				expected := sha256.Sum224([]byte("abc"))
				assertEqual(t, out, expected.Slice())
			})
		})

		when("finalizing into a buffer", func() {
			it("fails on a short buffer without spending the context", func() {
				c := sha256.NewContext(sha256.SHA256)
				assertNoError(t, c.Update([]byte("abc")))

				short := make([]byte, sha256.Size-1)
				_, err := c.FinalizeTo(short)
				assertErrorIs(t, err, sha256.ErrShortBuffer)

				out := make([]byte, sha256.Size+4)
				n, err := c.FinalizeTo(out)
				assertNoError(t, err)
				assertEqual(t, n, sha256.Size)
				expected := sha256.Sum256([]byte("abc"))
				assertEqual(t, out[:n], expected.Slice())
			})

			it("writes 28 bytes for SHA-224", func() {
				c := sha256.NewContext(sha256.SHA224)
				out := make([]byte, sha256.Size)
				n, err := c.FinalizeTo(out)
				assertNoError(t, err)
				assertEqual(t, n, sha256.Size224)
				expected := sha256.Sum224(nil)
				assertEqual(t, out[:n], expected.Slice())
			})
		})

		when("variant is not 224", func() {
			it("selects SHA-256", func() {
				c := sha256.NewContext(sha256.Variant(512))
				assertEqual(t, c.Variant(), sha256.SHA256)
				out, err := c.Finalize()
				assertNoError(t, err)
				expected := sha256.Sum256(nil)
				assertEqual(t, out, expected.Slice())
			})
		})
	}, spec.Report(report.Log{}), spec.Parallel(), spec.Random())
}
