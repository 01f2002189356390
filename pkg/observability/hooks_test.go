package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "repo1.maven.org", "/maven2/junit/junit/4.13/junit-4.13.pom")
	h.OnResponse(ctx, "GET", "repo1.maven.org", "/maven2/junit/junit/4.13/junit-4.13.pom", 200, 1024, time.Second)
	h.OnError(ctx, "GET", "repo1.maven.org", "/maven2/junit/junit/4.13/junit-4.13.pom", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)
	SetHTTPHooks(nil)

	if HTTP() != custom {
		t.Error("SetHTTPHooks(nil) should not replace existing hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)

	ctx := context.Background()
	HTTP().OnRequest(ctx, "GET", "example.com", "/a")
	HTTP().OnResponse(ctx, "GET", "example.com", "/a", 404, 0, time.Millisecond)

	if custom.requests != 1 || custom.responses != 1 {
		t.Errorf("requests=%d responses=%d, want 1 and 1", custom.requests, custom.responses)
	}
	if custom.lastStatus != 404 {
		t.Errorf("lastStatus = %d, want 404", custom.lastStatus)
	}
}

type testHTTPHooks struct {
	requests   int
	responses  int
	errors     int
	lastStatus int
}

func (h *testHTTPHooks) OnRequest(context.Context, string, string, string) { h.requests++ }
func (h *testHTTPHooks) OnResponse(_ context.Context, _, _, _ string, status, _ int, _ time.Duration) {
	h.responses++
	h.lastStatus = status
}
func (h *testHTTPHooks) OnError(context.Context, string, string, string, error) { h.errors++ }
