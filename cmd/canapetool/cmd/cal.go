package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	canape "github.com/roffe/gocanape"
	"github.com/spf13/cobra"
)

var calCmd = &cobra.Command{
	Use:   "cal",
	Short: "read and write calibration objects",
}

func init() {
	rootCmd.AddCommand(calCmd)
	calCmd.AddCommand(calGetCmd, calSetCmd)
	calGetCmd.Flags().Bool("cached", false, "read the cached value instead of uploading from the ECU")
	calSetCmd.Flags().BoolP("yes", "y", false, "do not ask before writing")
	calSetCmd.Flags().String("part", "values", "what to write: values, axis, x-axis or y-axis")
}

var calGetCmd = &cobra.Command{
	Use:   "get <module> <object>",
	Short: "print a calibration object, '*' patterns are allowed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cached, _ := cmd.Flags().GetBool("cached")
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			m, err := c.ModuleByName(args[0])
			if err != nil {
				return err
			}
			obj, err := calibrationObject(m, args[1])
			if err != nil {
				return err
			}
			obj.SetForceUpload(!cached)
			return printObject(cmd.OutOrStdout(), obj)
		})
	},
}

func printObject(out io.Writer, obj canape.CalibrationObject) error {
	fmt.Fprintf(out, "%s %s [%s] %g..%g %s\n", bold(obj.Name()), obj.ValueType(), obj.DataType(), obj.Min(), obj.Max(), obj.Unit())
	switch o := obj.(type) {
	case *canape.ScalarObject:
		v, err := o.Value()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "value: %s\n", strconv.FormatFloat(v, 'f', int(o.Precision()), 64))
	case *canape.AxisObject:
		axis, err := o.Axis()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "axis: %s\n", formatFloats(axis))
	case *canape.CurveObject:
		axis, err := o.Axis()
		if err != nil {
			return err
		}
		values, err := o.Values()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "axis:   %s\nvalues: %s\n", formatFloats(axis), formatFloats(values))
	case *canape.MapObject:
		x, err := o.XAxis()
		if err != nil {
			return err
		}
		y, err := o.YAxis()
		if err != nil {
			return err
		}
		values, err := o.Values()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "x-axis: %s\ny-axis: %s\n", formatFloats(x), formatFloats(y))
		for _, row := range values {
			fmt.Fprintf(out, "  %s\n", formatFloats(row))
		}
	case *canape.ValueBlockObject:
		values, err := o.Values()
		if err != nil {
			return err
		}
		for _, row := range values {
			fmt.Fprintf(out, "  %s\n", formatFloats(row))
		}
	case *canape.ASCIIObject:
		s, err := o.ASCII()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "value: %q\n", s)
	}
	return nil
}

var calSetCmd = &cobra.Command{
	Use:   "set <module> <object> <value>",
	Short: "write a calibration object",
	Long: `Write a calibration object. Curves and axes take comma separated
values, maps and value blocks take rows separated by ';', e.g. "1,2;3,4".`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		part, _ := cmd.Flags().GetString("part")
		return run(cmd, func(ctx context.Context, c *canape.CANape) error {
			m, err := c.ModuleByName(args[0])
			if err != nil {
				return err
			}
			obj, err := calibrationObject(m, args[1])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := yesNo(fmt.Sprintf("write %s of %s", part, obj.Name()))
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			if err := writeObject(obj, part, args[2]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), green("written"))
			return printObject(cmd.OutOrStdout(), obj)
		})
	},
}

func writeObject(obj canape.CalibrationObject, part, value string) error {
	switch o := obj.(type) {
	case *canape.ScalarObject:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		return o.SetValue(v)
	case *canape.ASCIIObject:
		return o.SetASCII(value)
	case *canape.AxisObject:
		values, err := parseFloats(value)
		if err != nil {
			return err
		}
		return o.SetAxis(values)
	case *canape.CurveObject:
		values, err := parseFloats(value)
		if err != nil {
			return err
		}
		if part == "axis" {
			return o.SetAxis(values)
		}
		return o.SetValues(values)
	case *canape.MapObject:
		switch part {
		case "x-axis", "y-axis":
			values, err := parseFloats(value)
			if err != nil {
				return err
			}
			if part == "x-axis" {
				return o.SetXAxis(values)
			}
			return o.SetYAxis(values)
		}
		values, err := parseMatrix(value)
		if err != nil {
			return err
		}
		return o.SetValues(values)
	case *canape.ValueBlockObject:
		values, err := parseMatrix(value)
		if err != nil {
			return err
		}
		return o.SetValues(values)
	}
	return fmt.Errorf("%s: %w", obj.Name(), canape.ErrUnknownValueType)
}
