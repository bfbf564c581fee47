/*
Package cli provides command-line helpers shared by the lodws commands.

Errors:

Commands return *ConfigError for invalid configuration and *CommandError
for runtime failures. ExitCode maps them to the process exit status:

	if err := rootCmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}

Output Formatting:

Results are printed as aligned text or JSON, selected with --output:

	format, err := cli.ParseOutputFormat(flagValue)
	if err != nil {
		return err
	}
	table := cli.Table{Headers: []string{"PATH", "ROUTE"}, Rows: rows}
	return cli.NewFormatter(format).FormatTo(os.Stdout, table)
*/
package cli
