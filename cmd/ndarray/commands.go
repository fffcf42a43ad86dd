package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/x448/float16"

	"github.com/born-ml/ndarray/internal/envconfig"
	"github.com/born-ml/ndarray/ndarray"
)

// NewCLI builds the command tree.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ndarray",
		Short:         "Strided multi-dimensional arrays for Go",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ndarray %s\n", version)
		},
	}

	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "Show how a workload is partitioned across workers",
		Args:  cobra.NoArgs,
		RunE:  splitHandler,
	}
	splitCmd.Flags().Int("total", 100, "Number of elements")
	splitCmd.Flags().Int("splits", int(envconfig.NumWorkers()), "Number of ranges")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run slicing, transposition, and elementwise examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show recognized environment variables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			showEnv(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(versionCmd, splitCmd, demoCmd, envCmd)
	return rootCmd
}

func splitHandler(cmd *cobra.Command, _ []string) error {
	total, err := cmd.Flags().GetInt("total")
	if err != nil {
		return err
	}
	splits, err := cmd.Flags().GetInt("splits")
	if err != nil {
		return err
	}

	ranges, err := ndarray.SplitRanges(total, splits)
	if err != nil {
		return err
	}

	table := newTable(cmd.OutOrStdout())
	table.SetHeader([]string{"WORKER", "START", "END", "SIZE"})
	for i, r := range ranges {
		table.Append([]string{
			strconv.Itoa(i),
			strconv.Itoa(r.Start),
			strconv.Itoa(r.End),
			strconv.Itoa(r.Len()),
		})
	}
	table.Render()
	return nil
}

func showEnv(w io.Writer) {
	vars := envconfig.AsMap()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	table := newTable(w)
	table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
	for _, name := range names {
		v := vars[name]
		table.Append([]string{v.Name, fmt.Sprint(v.Value), v.Description})
	}
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoFormatHeaders(false)
	return table
}

func runDemo(w io.Writer) error {
	a, err := ndarray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		return err
	}
	b, err := ndarray.FromNested[int]([][]int{{7, 8, 9}, {10, 11, 12}})
	if err != nil {
		return err
	}

	sum, err := ndarray.Add(a, b)
	if err != nil {
		return err
	}
	prod, err := ndarray.Mul(sum, a)
	if err != nil {
		return err
	}
	section(w, "(a + b) * a", prod)

	tr, err := a.Transposed(1, 0)
	if err != nil {
		return err
	}
	section(w, "a transposed", tr)

	wide, err := ndarray.FromNested[int]([][]int{
		{1, 2, 3, 4, 5, 6, 7},
		{4, 5, 6, 7, 8, 9, 10},
	})
	if err != nil {
		return err
	}
	cols, err := wide.Slice(ndarray.All(), ndarray.Span(1, 5))
	if err != nil {
		return err
	}
	cols, err = cols.Slice(ndarray.All(), ndarray.To(3))
	if err != nil {
		return err
	}
	section(w, "wide[:, 1:5][:, :3]", cols)

	line, err := ndarray.FromFlat([]int{1, 2, 3, 4, 5, 4, 5, 6, 7, 8, 9, 10}, ndarray.Shape{12})
	if err != nil {
		return err
	}
	rev, err := line.Slice(ndarray.From(-1).Step(-1))
	if err != nil {
		return err
	}
	section(w, "line[-1::-1]", rev)

	half := ndarray.Map(a, func(x int) float16.Float16 { return float16.Fromfloat32(float32(x) / 4) })
	halfSum, err := ndarray.ElementwiseInParallel(half, half, func(x, y float16.Float16) float16.Float16 {
		return float16.Fromfloat32(x.Float32() + y.Float32())
	})
	if err != nil {
		return err
	}
	section(w, "float16 a/4 + a/4", ndarray.Map(halfSum, float16.Float16.Float32))
	return nil
}

func section[T any](w io.Writer, title string, a *ndarray.NDArray[T]) {
	fmt.Fprintf(w, "%s %v\n%s\n\n", title, a.Shape(), a)
}
