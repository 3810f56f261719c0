package classify

// classNames is the label catalog exposed by the classifier. The labels
// follow the AudioSet/YAMNet ontology; the full ontology has 521 classes,
// this catalog carries the subset relevant to an assistive-listening
// deployment plus common ambient labels.
var classNames = []string{
	"Speech", "Child speech, kid speaking", "Conversation",
	"Narration, monologue", "Shout", "Yell", "Screaming", "Whispering",
	"Laughter", "Baby laughter", "Crying, sobbing", "Baby cry, infant cry",
	"Whimper", "Sigh", "Singing", "Male singing", "Female singing",
	"Child singing", "Humming", "Whistling", "Breathing", "Snoring",
	"Cough", "Sneeze", "Walk, footsteps", "Clapping", "Cheering",
	"Applause", "Chatter", "Crowd", "Children playing",
	"Dog", "Bark", "Howl", "Growling", "Cat", "Purr", "Meow",
	"Bird", "Bird vocalization, bird call, bird song", "Chirp, tweet",
	"Music", "Musical instrument", "Guitar", "Piano", "Drum", "Violin, fiddle",
	"Wind", "Rustling leaves", "Thunderstorm", "Thunder", "Rain",
	"Rain on surface", "Stream", "Ocean", "Waves, surf", "Fire", "Crackle",
	"Vehicle", "Car", "Vehicle horn, car horn, honking", "Car alarm",
	"Car passing by", "Truck", "Air horn, truck horn", "Reversing beeps",
	"Bus", "Emergency vehicle", "Police car (siren)", "Ambulance (siren)",
	"Fire engine, fire truck (siren)", "Motorcycle",
	"Traffic noise, roadway noise", "Train", "Train horn", "Aircraft",
	"Helicopter", "Bicycle", "Engine", "Lawn mower", "Chainsaw",
	"Door", "Doorbell", "Ding-dong", "Sliding door", "Slam", "Knock",
	"Tap", "Squeak", "Cupboard open or close", "Drawer open or close",
	"Dishes, pots, and pans", "Cutlery, silverware", "Frying (food)",
	"Microwave oven", "Blender", "Water tap, faucet",
	"Sink (filling or washing)", "Toilet flush", "Hair dryer",
	"Vacuum cleaner", "Keys jangling", "Scissors", "Typing",
	"Computer keyboard", "Writing", "Alarm", "Telephone",
	"Telephone bell ringing", "Ringtone", "Telephone dialing, DTMF",
	"Alarm clock", "Siren", "Civil defense siren", "Buzzer",
	"Smoke detector, smoke alarm", "Fire alarm", "Foghorn", "Whistle",
	"Doorbell chime", "Bell", "Church bell", "Bicycle bell", "Chime",
	"Wind chime", "Glass", "Chink, clink", "Shatter", "Splash, splatter",
	"Gunshot, gunfire", "Fireworks", "Burst, pop", "Explosion",
	"Wood", "Chop", "Sawing", "Hammer", "Jackhammer", "Drill",
	"Power tool", "Static", "White noise", "Environmental noise",
	"Television", "Radio", "Echo", "Silence",
}
