// Package pingsweep probes every host of one or more networks for ICMP
// reachability and produces an ordered up/down report.
//
// A sweep is performed by:
//   - Expanding CIDR targets to usable host addresses (ExpandTargets)
//   - Dispatching one probe per host through a bounded worker pool (Sweeper)
//   - Aggregating outcomes into a shared counter and result collection
//   - Sorting the outcomes by numeric address once every probe has finished (Report)
//
// Example usage:
//
//	hosts, err := pingsweep.ExpandTargets([]string{"192.168.1.0/24"}, pingsweep.DefaultMaxHostBits)
//	sweeper, err := pingsweep.New(pingsweep.Options{
//		Workers: pingsweep.DefaultWorkers,
//		Prober:  pingsweep.NewExecProber(pingsweep.DefaultCount, pingsweep.DefaultTimeout),
//	})
//	report, err := sweeper.Run(ctx, hosts)
//
// Two probe backends are available. ExecProber runs the platform ping binary
// and needs no privileges. ICMPProber sends echo requests in process and
// requires either raw socket privileges or, on Linux, an unprivileged ping
// group (net.ipv4.ping_group_range).
//
// Limitations:
//   - Hosts with ICMP disabled or firewalled are reported down
//   - Ping output parsing falls back to heuristics on localized systems
//   - Interrupted sweeps are not exported
package pingsweep
