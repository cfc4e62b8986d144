package console_test

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/julien-sobczak/ulysses-export/pkg/console"
	"github.com/stretchr/testify/assert"
)

func TestProgressLog_periodic(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(
		console.Every(2),
		// Override options for unit-testing purposes
		console.ToWriter(&out))

	for i := 1; i <= 5; i++ {
		l.Log(i, fmt.Sprintf("Exported %d sheets.", i))
	}
	l.Clear("Exported 5 sheets.")

	expected := "" +
		"Exported 2 sheets.\n" +
		"Exported 4 sheets.\n" +
		"Exported 5 sheets.\n"
	assert.Equal(t, expected, out.String())
}

func TestProgressLog_interactive(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(
		console.Interactive(true),
		// Override options for unit-testing purposes
		console.ToWriter(&out),
		console.LineLength(20))

	for i := 1; i <= 3; i++ {
		l.Log(i, fmt.Sprintf("Exported %d sheets.", i))
	}
	l.Clear("Done")

	expected := "" +
		"Exported 1 sheets.  \r" +
		"Exported 2 sheets.  \r" +
		"Exported 3 sheets.  \r" +
		"Done                \n"
	assert.Equal(t, expected, out.String())
}

func TestProgressLog_truncate(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(
		console.Interactive(true),
		console.ToWriter(&out),
		console.LineLength(10))
	l.Log(12, "A very long message")
	l.Clear("")

	assert.Equal(t, "A very lon\r          \r", out.String())
}

func TestProgressLog_concurrent(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(console.Every(1), console.ToWriter(&out))

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Log(i, "step")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, bytes.Count(out.Bytes(), []byte("step\n")))
}
