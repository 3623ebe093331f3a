// Package dcmread provides methods for reading DICOM data
package dcmread

// DCMReadVersion equals the current (or aimed for) version of the software
const DCMReadVersion = "0.1"
