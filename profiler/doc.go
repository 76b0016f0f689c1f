// [Profiler] adds runtime profiling capabilities to CLI applications.
//
// It supports CPU, heap, allocs, goroutine, threadcreate, block, and mutex
// profiles through command-line flags.
//
// mapviewer wraps its root command with profiler lifecycle methods so a
// slow batch run or TUI session can be profiled without recompiling:
//
//	prof := profiler.New()
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        return prof.Start()
//	    },
//	    PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
//	        return prof.Stop()
//	    },
//	}
//
//	prof.RegisterFlags(rootCmd.PersistentFlags())
//	err := rootCmd.Execute()
//
// Users can then enable profiling via flags like --cpu-profile=cpu.prof.
package profiler
