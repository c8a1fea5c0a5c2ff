package validation

const (
	MsgAllFieldsRequired = "All Fields Must Be Filled In."
	MsgSignInRequired    = "Must Be Signed In."
	MsgSignInToPost      = "Must Be Signed In To Create Post."

	MsgEmailRegistered  = "Email Is Already Registered."
	MsgUsernameTaken    = "Username Is Already Taken."
	MsgUsernameLength   = "Username Must Be Between 1 And 30 Characters."
	MsgEmailInvalid     = "Email Must Be Valid."
	MsgPasswordLength   = "Password Must Be At Least 8 Characters."
	MsgPasswordMismatch = "Passwords Must Match."

	MsgTitleLength       = "Title Must Be Between 5 And 60 Characters."
	MsgDescriptionLength = "Description Must Be Between 5 And 800 Characters."
	MsgAudioTooLarge     = "Audio File Must Be At Most 1 MB."
	MsgTagKeys           = "Tags Must Include Exactly The 8 Genre Options."
	MsgTooManyTags       = "Must Only Have At Most 2 Tags Selected."

	MsgPostNotFound       = "Post Does Not Exist."
	MsgPostNotFoundToEdit = "Cannot Edit Post That Does Not Exist."
	MsgOriginalPoster     = "Must Be Original Poster."

	MsgCommentNotFound   = "Comment Does Not Exist."
	MsgCommentLength     = "Comment Must Be Between 4 And 400 Characters."
	MsgOriginalCommenter = "Must Be Original Commenter."

	MsgReplyNotFound       = "Reply Does Not Exist."
	MsgReplyLength         = "Reply Must Be Between 4 And 400 Characters."
	MsgOriginalReplier     = "Must Be Original Replier."
	MsgReplyPostMismatch   = "Reply Does Not Belong To This Post."
	MsgParentReplyMismatch = "Replied-To Reply Does Not Belong To This Comment."

	MsgProfileNotFound     = "Profile Does Not Exist."
	MsgSignedInAsUser      = "Must Be Signed In As This User."
	MsgContactLength       = "Contact Must Be At Most 50 Characters."
	MsgBioLength           = "Bio Must Be At Most 800 Characters."
	MsgUnknownProfileField = "Profile Field Cannot Be Edited."

	MsgInvalidCredentials = "Email Or Password Is Incorrect."
	MsgEmailNotVerified   = "Email Has Not Been Verified."
	MsgInvalidToken       = "Verification Link Is Invalid Or Expired."
)
