// Package osarg retrieves the raw process argument list.
//
// On most platforms this is exactly os.Args. On Windows the runtime decodes
// the native 16-bit command line lossily, replacing unpaired surrogates, so
// the list is rebuilt there from the original command line instead.
package osarg
