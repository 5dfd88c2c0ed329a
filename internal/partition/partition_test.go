package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNoTasks(t *testing.T) {
	got := Split([]string{"-v", "2"}, []string{"build", "test"})
	assert.Equal(t, [][]string{{"-v", "2"}}, got)
}

func TestSplitRootPlusOneTask(t *testing.T) {
	got := Split([]string{"-v", "2", "build", "--flag"}, []string{"build", "test"})
	assert.Equal(t, [][]string{{"-v", "2"}, {"build", "--flag"}}, got)
}

func TestSplitMultipleTasks(t *testing.T) {
	got := Split([]string{"build", "test", "--verbose"}, []string{"build", "test"})
	assert.Equal(t, [][]string{{}, {"build"}, {"test", "--verbose"}}, got)
}

func TestSplitSameTaskTwice(t *testing.T) {
	got := Split([]string{"test", "a", "test", "b"}, []string{"test"})
	assert.Equal(t, [][]string{{}, {"test", "a"}, {"test", "b"}}, got)
}

func TestSplitEmpty(t *testing.T) {
	got := Split([]string{}, []string{"build"})
	assert.Equal(t, [][]string{{}}, got)
}
