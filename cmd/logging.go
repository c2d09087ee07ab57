package cmd

import (
	"flag"
	"io"
	"strconv"

	"k8s.io/klog/v2"
)

// setupLogging points klog at w with verbosity v. klog gets a private flag
// set so that nothing in os.Args is ever taken as a logging flag.
func setupLogging(v int, w io.Writer) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("logtostderr", "false")
	_ = fs.Set("v", strconv.Itoa(v))
	klog.SetOutput(w)
}
