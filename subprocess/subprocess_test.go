package subprocess

import (
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/host"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func skipOnWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix shell commands")
	}
}

func TestOutput(t *testing.T) {
	skipOnWindows(t)
	Convey("Captured output", t, func() {
		Convey("Captures stdout", func() {
			output, ok := Output("echo hello")
			So(ok, ShouldBeTrue)
			So(strings.TrimSpace(output), ShouldEqual, "hello")
		})

		Convey("Captures stderr too", func() {
			output, ok := Output("echo oops 1>&2")
			So(ok, ShouldBeTrue)
			So(strings.TrimSpace(output), ShouldEqual, "oops")
		})

		Convey("A failing command reports failure", func() {
			_, ok := Output("exit 3")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestLive(t *testing.T) {
	skipOnWindows(t)
	Convey("Live streaming", t, func() {
		Convey("Lines arrive in order", func() {
			var mutex sync.Mutex
			var lines []string
			ok := Live("echo one; echo two; echo three", func(line string) {
				mutex.Lock()
				lines = append(lines, line)
				mutex.Unlock()
			})
			So(ok, ShouldBeTrue)
			So(lines, ShouldResemble, []string{"one", "two", "three"})
		})

		Convey("A failing command reports failure after streaming", func() {
			var lines []string
			ok := Live("echo partial; exit 1", func(line string) {
				lines = append(lines, line)
			})
			So(ok, ShouldBeFalse)
			So(lines, ShouldResemble, []string{"partial"})
		})

		Convey("An empty command completes without lines", func() {
			So(Live("", func(string) {}), ShouldBeTrue)
		})
	})
}

func TestLiveAbort(t *testing.T) {
	skipOnWindows(t)
	Convey("An aborted host stops the stream", t, func() {
		bridge := host.NewLocalBridge()
		bridge.Abort()
		host.SetBridge(bridge)
		defer host.SetBridge(nil)

		before := runtime.NumGoroutine()
		for i := 0; i < 5; i++ {
			ok := Live("while true; do echo tick; sleep 0.01; done", func(string) {})
			So(ok, ShouldBeFalse)
		}
		time.Sleep(100 * time.Millisecond)

		Convey("The line reader does not linger past the kill", func() {
			So(runtime.NumGoroutine(), ShouldBeLessThanOrEqualTo, before+1)
		})
	})
}

func TestOpen(t *testing.T) {
	skipOnWindows(t)
	Convey("Interactive open", t, func() {
		Convey("Stdin feeds the child", func() {
			output, ok := Open("cat", "piped input", time.Second*5)
			So(ok, ShouldBeTrue)
			So(output, ShouldEqual, "piped input")
		})

		Convey("The timeout kills a hanging child", func() {
			started := time.Now()
			_, ok := Open("sleep 30", "", 200*time.Millisecond)
			So(ok, ShouldBeFalse)
			So(time.Since(started), ShouldBeLessThan, 5*time.Second)
		})

		Convey("A failing child reports failure with its output", func() {
			output, ok := Open("echo before; exit 7", "", time.Second*5)
			So(ok, ShouldBeFalse)
			So(strings.TrimSpace(output), ShouldEqual, "before")
		})
	})
}
