package constants

const StandardGravity float64 = 9.81 // [m s^-2]

// reference falling-body problem
const ReferenceDrag float64 = 12.5          // [kg s^-1]
const ReferenceTargetVelocity float64 = 45. // [m s^-1]
const ReferenceTime float64 = 10.           // [s]
const ReferenceLowerMass float64 = 50.      // [kg]
const ReferenceUpperMass float64 = 200.     // [kg]
const ReferenceGuessMass float64 = 100.     // [kg]
