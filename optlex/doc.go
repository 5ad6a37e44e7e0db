// Package optlex is a pathologically simple command line argument lexer.
//
// Most argument parsers are declarative: you tell them what to parse and they
// do it. This one hands you a stream of options and values and lets you
// figure out the rest.
//
//	type config struct {
//		thing  string
//		number int
//		shout  bool
//	}
//
//	func parseArgs() (config, error) {
//		var cfg config
//		cfg.number = 1
//		p := optlex.FromEnv()
//		for {
//			arg, err := p.Next()
//			if err != nil {
//				return cfg, err
//			}
//			if arg.Kind == optlex.KindEnd {
//				break
//			}
//			switch {
//			case arg.IsShort('n'), arg.IsLong("number"):
//				value, err := p.Value()
//				if err != nil {
//					return cfg, err
//				}
//				cfg.number, err = optlex.Parse(value, strconv.Atoi)
//				if err != nil {
//					return cfg, err
//				}
//			case arg.IsLong("shout"):
//				cfg.shout = true
//			case arg.Kind == optlex.KindValue && cfg.thing == "":
//				cfg.thing = arg.Value
//			default:
//				return cfg, arg.Unexpected()
//			}
//		}
//		return cfg, nil
//	}
//
// The lexer recognizes -x, --xyz, the -- terminator, --opt=val, -oval and
// combined clusters such as -abc. It does not expand abbreviated long options
// and does not treat -xyz as a single multi-letter option.
//
// Arguments are plain Go strings but are never assumed to be valid UTF-8:
// a unit that does not decode as text still travels through the lexer byte
// for byte. Use Text or Parse when a value must actually be text.
package optlex
