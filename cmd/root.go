package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "likepost",
	Short: "likepost is binjuhor's post like service.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("welcome to use likepost, use `likepost -h` for help")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
