package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <field>",
		Short: "Print one Snapshot field by name (case-insensitive)",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			d := openDocument(cmd, args[0])
			snap := d.Snapshot()

			v := reflect.ValueOf(snap)
			t := v.Type()
			wanted := strings.ToLower(args[1])

			for i := 0; i < t.NumField(); i++ {
				if strings.ToLower(t.Field(i).Name) != wanted {
					continue
				}
				field := v.Field(i)
				if field.Kind() == reflect.Ptr {
					if field.IsNil() {
						fmt.Println("null")
						return
					}
					fmt.Println(field.Elem().Interface())
					return
				}
				fmt.Println(field.Interface())
				return
			}
			fail(ExitCodeUsage, "Unknown field %q", args[1])
		},
	}
	return cmd
}
