package puzzle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// sumUnit parses whitespace separated ints; part 1 sums them, part 2 takes
// the product.
func sumUnit(day int) *Unit[[]int] {
	return &Unit[[]int]{
		Number: day,
		Name:   fmt.Sprintf("Sum %d", day),
		Parse: func(input string) ([]int, error) {
			var out []int
			for _, f := range strings.Fields(input) {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
				}
				out = append(out, v)
			}
			return out, nil
		},
		Part1: func(_ context.Context, in []int) (Answer, error) {
			total := 0
			for _, v := range in {
				total += v
			}
			return Int(total), nil
		},
		Part2: func(_ context.Context, in []int) (Answer, error) {
			total := 1
			for _, v := range in {
				total *= v
			}
			return Int(total), nil
		},
		Samples: []Example{
			{Part: Part1, Input: "1 2 3", Want: "6"},
			{Part: Part2, Input: "1 2 3 4", Want: "24"},
		},
	}
}

type mapInputs map[int]string

func (m mapInputs) Load(day int) (string, error) {
	text, ok := m[day]
	if !ok {
		return "", fmt.Errorf("no input for day %d", day)
	}
	return text, nil
}

func TestAnswers(t *testing.T) {
	assert.Equal(t, "-12", Int(-12).String())
	assert.Equal(t, "18446744073709551615", Uint(^uint64(0)).String())
	assert.Equal(t, "co,de,ka,ta", Text("co,de,ka,ta").String())
}

func TestParsePart(t *testing.T) {
	p, err := ParsePart("2")
	require.NoError(t, err)
	assert.Equal(t, Part2, p)
	_, err = ParsePart("3")
	assert.Error(t, err)
}

func TestUnitSolve(t *testing.T) {
	u := sumUnit(1)
	ctx := context.Background()

	ans, err := u.Solve(ctx, Part1, "4 5 6")
	require.NoError(t, err)
	assert.Equal(t, "15", ans.String())

	_, err = u.Solve(ctx, Part1, "4 x 6")
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "day 1: parse")

	u.Part2 = nil
	assert.False(t, u.Has(Part2))
	_, err = u.Solve(ctx, Part2, "1")
	assert.ErrorIs(t, err, ErrNoPart)
}

func TestUnitSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sumUnit(1).Solve(ctx, Part1, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(sumUnit(3)))
	require.NoError(t, r.Register(sumUnit(1)))

	err := r.Register(sumUnit(3))
	assert.Error(t, err)
	assert.Error(t, r.Register(sumUnit(26)))

	assert.Equal(t, []int{1, 3}, r.Days())
	assert.Equal(t, 2, r.Len())

	_, err = r.Get(2)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestRunnerRunsJobsInOrder(t *testing.T) {
	reg := NewRegistry()
	for d := 1; d <= 5; d++ {
		require.NoError(t, reg.Register(sumUnit(d)))
	}
	inputs := mapInputs{}
	for d := 1; d <= 5; d++ {
		inputs[d] = strings.Repeat(strconv.Itoa(d)+" ", d)
	}

	r := &Runner{Registry: reg, Inputs: inputs, Workers: 3, Logger: zap.NewNop()}
	jobs, err := r.Jobs(reg.Days(), 0)
	require.NoError(t, err)
	require.Len(t, jobs, 10)

	results, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)

	var got []string
	for _, res := range results {
		require.NoError(t, res.Err)
		got = append(got, fmt.Sprintf("%d/%d=%s", res.Job.Day, res.Job.Part, res.Answer))
	}
	want := []string{
		"1/1=1", "1/2=1",
		"2/1=4", "2/2=4",
		"3/1=9", "3/2=27",
		"4/1=16", "4/2=256",
		"5/1=25", "5/2=3125",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerIsolatesFailures(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(sumUnit(1)))
	require.NoError(t, reg.Register(sumUnit(2)))

	r := &Runner{Registry: reg, Inputs: mapInputs{1: "1 2", 2: "bad"}}
	jobs, err := r.Jobs([]int{1, 2}, Part1)
	require.NoError(t, err)

	results, err := r.Run(context.Background(), jobs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)

	require.Len(t, results, 2)
	assert.True(t, results[0].OK())
	assert.Equal(t, "3", results[0].Answer.String())
	assert.False(t, results[1].OK())
}

func TestRunnerMissingInput(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(sumUnit(1)))
	r := &Runner{Registry: reg, Inputs: mapInputs{}}

	results, err := r.Run(context.Background(), []Job{{Day: 1, Part: Part1}})
	require.Error(t, err)
	assert.Contains(t, results[0].Err.Error(), "load input")
}

type countingInputs struct {
	loads atomic.Int32
}

func (c *countingInputs) Load(int) (string, error) {
	c.loads.Add(1)
	return "2 3", nil
}

func TestRunnerLoadsInputOnce(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(sumUnit(7)))
	src := &countingInputs{}
	r := &Runner{Registry: reg, Inputs: src, Workers: 2}

	_, err := r.Run(context.Background(), []Job{{Day: 7, Part: Part1}, {Day: 7, Part: Part2}})
	require.NoError(t, err)
	assert.Equal(t, int32(1), src.loads.Load())
}

func TestRunnerExamples(t *testing.T) {
	reg := NewRegistry()
	u := sumUnit(4)
	u.Samples = append(u.Samples, Example{Part: Part1, Input: "1 1", Want: "3"})
	require.NoError(t, reg.Register(u))

	r := &Runner{Registry: reg}
	jobs, err := r.ExampleJobs([]int{4}, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	results, err := r.Run(context.Background(), jobs)
	assert.ErrorIs(t, err, ErrMismatch)
	assert.True(t, results[0].OK())
	assert.True(t, results[1].OK())
	assert.False(t, results[2].OK())
	assert.Equal(t, "example 3", results[2].Job.Label)

	jobs, err = r.ExampleJobs([]int{4}, Part2)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestJobsRejectsMissingPart(t *testing.T) {
	reg := NewRegistry()
	u := sumUnit(25)
	u.Part2 = nil
	require.NoError(t, reg.Register(u))
	r := &Runner{Registry: reg}

	jobs, err := r.Jobs([]int{25}, 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	_, err = r.Jobs([]int{25}, Part2)
	assert.ErrorIs(t, err, ErrNoPart)
}

func TestMapSum(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i
	}
	sum, err := MapSum(context.Background(), 4, items, func(v int) (int, error) { return v, nil })
	require.NoError(t, err)
	assert.Equal(t, 999*1000/2, sum)

	n, err := Count(context.Background(), 0, items, func(v int) bool { return v%3 == 0 })
	require.NoError(t, err)
	assert.Equal(t, 334, n)
}

func TestMapSumError(t *testing.T) {
	boom := errors.New("boom")
	_, err := MapSum(context.Background(), 2, []int{1, 2, 3}, func(v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines("a\r\nb\n\n"))
	assert.Nil(t, Lines("\n"))
	assert.Equal(t, []string{"x\ny", "z"}, Sections("\nx\ny\n\nz\n"))

	got, err := Ints(" 1  2\t-3 ", "")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, -3}, got)

	got, err = Ints("75,47,61", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{75, 47, 61}, got)

	_, err = Ints("1,x", ",")
	assert.ErrorIs(t, err, ErrMalformedInput)

	err = Malformed(3, "missing %s", "colon")
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 3: missing colon")
}
