package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/anyswap/stobject/sfield"
	"github.com/anyswap/stobject/stobject"
)

var (
	nameStyle   = color.New(color.FgCyan)
	typeStyle   = color.New(color.FgYellow)
	valueStyle  = color.New(color.FgGreen)
	objectStyle = color.New(color.FgMagenta, color.Bold)
	absentStyle = color.New(color.FgRed)

	showCommand = &cli.Command{
		Action:    showAction,
		Name:      "show",
		Usage:     "print a colored field by field dump of a hex encoded object",
		ArgsUsage: "<hex>",
		Flags:     append(decodeFlags, &cli.BoolFlag{Name: "nocolor", Usage: "disable colors"}),
	}
)

func showAction(ctx *cli.Context) error {
	r, err := readRecord(ctx)
	if err != nil {
		return err
	}
	color.NoColor = color.NoColor || ctx.Bool("nocolor")
	header := "Object"
	if t := r.Template(); t != nil {
		header = t.Name()
	}
	objectStyle.Println(header)
	return showRecord(r, 1)
}

func showRecord(r *stobject.Record, depth int) error {
	indent := strings.Repeat("  ", depth)
	return r.Each(func(f *sfield.Field, v stobject.Value) error {
		fmt.Print(indent)
		nameStyle.Printf("%-22s ", f.Name)
		typeStyle.Printf("%-10s ", f.Type)
		switch val := v.(type) {
		case stobject.NotPresent:
			absentStyle.Println("absent")
		case *stobject.Record:
			objectStyle.Printf("{%d}\n", val.Len())
			return showRecord(val, depth+1)
		case stobject.Array:
			objectStyle.Printf("[%d]\n", len(val))
			for _, obj := range val {
				fmt.Print(indent, "  ")
				objectStyle.Println(obj.Name())
				if err := showRecord(obj, depth+2); err != nil {
					return err
				}
			}
		default:
			valueStyle.Println(showValue(f, v))
		}
		return nil
	})
}

func showValue(f *sfield.Field, v stobject.Value) string {
	code, ok := v.(stobject.UInt16)
	if !ok {
		return v.Text()
	}
	switch f {
	case sfield.TransactionType:
		if format, ok := stobject.TxFormats.ByCode(uint16(code)); ok {
			return format.Name
		}
	case sfield.LedgerEntryType:
		if format, ok := stobject.LedgerFormats.ByCode(uint16(code)); ok {
			return format.Name
		}
	}
	return v.Text()
}
