// Package pack turns a skill bundle directory into a distributable zip
// archive. Archiving is all-or-nothing: the archive is written to a
// temporary file and renamed into place only after every entry has been
// stored, so a failed run never leaves a partial artifact behind. The
// package also authors an optional install-instructions companion document
// and can list the entries of a produced archive.
package pack
