package osyris

import (
	"bytes"
	"testing"

	"osyris/ioport"
	"osyris/stdlib"
	"osyris/value"
)

// scopeWithCapturedStdout builds a root scope like NewRootScope, except
// stdout writes into buf instead of the real process stdout and no stdin or
// stderr port is bound, so end-to-end scenarios can assert on captured
// output.
func scopeWithCapturedStdout(buf *bytes.Buffer) *value.Scope {
	scope := value.NewScope()
	stdlib.Register(scope)
	scope.Insert("stdout", value.NewPort(ioport.NewStreamPort(nil, buf)))
	scope.Insert("none", value.Nil())
	scope.Insert("true", value.Bool(true))
	scope.Insert("false", value.Bool(false))
	return scope
}

func runSource(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	scope := scopeWithCapturedStdout(&buf)
	if _, err := Run([]byte(src), "test", scope); err != nil {
		t.Fatalf("Run(%q) error: %v", src, err)
	}
	return buf.String()
}

func TestScenarioSimpleArithmeticPrint(t *testing.T) {
	if got := runSource(t, `(print (+ 1 2 3))`); got != "6\n" {
		t.Errorf("got %q, want %q", got, "6\n")
	}
}

func TestScenarioLateBoundLambdaCapture(t *testing.T) {
	src := `(def 'x 10) (def 'f (lambda 'y { [x + y] })) (set 'x 50) (print (f 3))`
	if got := runSource(t, src); got != "53\n" {
		t.Errorf("got %q, want %q", got, "53\n")
	}
}

func TestScenarioListPushAliasing(t *testing.T) {
	src := `(def 'l (list 1 2 3)) (def 'm l) (list-push l 4) (print (list-len l) (list-len m))`
	if got := runSource(t, src); got != "4 3\n" {
		t.Errorf("got %q, want %q", got, "4 3\n")
	}
}

func TestScenarioDictDotCallAndIndexing(t *testing.T) {
	src := `(def 'd (dict 'a 1 'b 2)) (print d.a d.b (d 'c))`
	if got := runSource(t, src); got != "1 2 none\n" {
		t.Errorf("got %q, want %q", got, "1 2 none\n")
	}
}

func TestScenarioTryCatchReceivesPayload(t *testing.T) {
	src := `(try { (error "boom") } (lambda 'e { (print e) }))`
	if got := runSource(t, src); got != "boom\n" {
		t.Errorf("got %q, want %q", got, "boom\n")
	}
}

func TestScenarioRecursiveFactorial(t *testing.T) {
	src := `(def 'fact (lambda 'n { (if [n <= 1] {1} { [n * (fact [n - 1])] }) })) (print (fact 5))`
	if got := runSource(t, src); got != "120\n" {
		t.Errorf("got %q, want %q", got, "120\n")
	}
}
