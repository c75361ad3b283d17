// Package mongodb implements the action that downloads the MongoDB installer
// archive matching the host operating system into the working directory.
//
// The download URL comes from a template with @OS, @VERSION and @EXT
// placeholders. Each supported OS category maps to one Release that fills
// them in; hosts outside those categories are told to install manually and
// nothing is fetched.
package mongodb
