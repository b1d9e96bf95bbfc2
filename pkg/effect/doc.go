/*
Package effect turns an effect implementation into a program the ckb-next
daemon can launch.

A Definition bundles the metadata announced by --ckb-info, the declared
parameters and presets, and the protocol.Effect that reacts to the session.
Execute parses the daemon's flags and runs either the info block or a full
protocol session:

	func main() {
		effect.Execute(&effect.Definition{
			Info: effect.Info{
				GUID: "{62909e5a-5f3e-4720-8638-f89c32367fd1}",
				Name: "Gradient",
			},
			Params: []param.Param{&param.AGradient{Name: "gradient"}},
			Effect: myEffect{},
		})
	}

Fatal session errors end the process with the status of their failure site
(see protocol.Site), and a panic in a hook ends it with the hook status.
*/
package effect
